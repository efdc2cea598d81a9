// Package identity validates the storefront's login, registration, and
// admin-user forms. Validation is purely client-side; there is no
// authentication backend.
package identity

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	// Chilean landline or mobile, with optional +56 prefix.
	phonePattern = regexp.MustCompile(`^((\+?56)?[2-9]\d{8})$`)
)

// MinPasswordLength is the minimum accepted password length on registration.
const MinPasswordLength = 8

// FieldError reports one invalid form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidChileanPhone reports whether s is a valid Chilean phone number.
func ValidChileanPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// Login holds the login form fields.
type Login struct {
	Email    string
	Password string
}

// Validate checks the login form.
func (l Login) Validate() []FieldError {
	var errs []FieldError
	if !ValidEmail(l.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Ingresa un correo válido"})
	}
	if l.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Ingresa tu contraseña"})
	}
	return errs
}

// Registration holds the registration form fields.
type Registration struct {
	Nombre            string
	Correo            string
	ConfirmarCorreo   string
	Password          string
	ConfirmarPassword string
	// Telefono is optional; when present it must be a valid Chilean number.
	Telefono string
	Region   string
	Comuna   string
}

// Validate checks the registration form: required fields, matching email and
// password confirmations, password length, optional phone format, and that
// the comuna belongs to the chosen region.
func (r Registration) Validate() []FieldError {
	var errs []FieldError

	if r.Nombre == "" {
		errs = append(errs, FieldError{Field: "nombre", Message: "Ingresa tu nombre"})
	}
	if !ValidEmail(r.Correo) {
		errs = append(errs, FieldError{Field: "correo", Message: "Ingresa un correo válido"})
	}
	if r.Correo != r.ConfirmarCorreo {
		errs = append(errs, FieldError{Field: "confirmarCorreo", Message: "Los correos no coinciden"})
	}
	if len(r.Password) < MinPasswordLength {
		errs = append(errs, FieldError{Field: "password", Message: "La contraseña debe tener al menos 8 caracteres"})
	}
	if r.Password != r.ConfirmarPassword {
		errs = append(errs, FieldError{Field: "confirmarPassword", Message: "Las contraseñas no coinciden"})
	}
	if r.Telefono != "" && !ValidChileanPhone(r.Telefono) {
		errs = append(errs, FieldError{Field: "telefono", Message: "Ingresa un teléfono chileno válido"})
	}

	if r.Region == "" {
		errs = append(errs, FieldError{Field: "region", Message: "Selecciona una región"})
	}
	if r.Comuna == "" {
		errs = append(errs, FieldError{Field: "comuna", Message: "Selecciona una comuna"})
	} else if r.Region != "" && !ComunaInRegion(r.Region, r.Comuna) {
		errs = append(errs, FieldError{Field: "comuna", Message: "La comuna no pertenece a la región seleccionada"})
	}

	return errs
}

// AdminUser holds the admin user-entry form fields. Every field is required.
type AdminUser struct {
	UsuarioSistema string
	Nombre         string
	Apellido       string
	RUT            string
	Correo         string
}

// Validate checks the admin form.
func (u AdminUser) Validate() []FieldError {
	var errs []FieldError
	required := []struct {
		field, value, message string
	}{
		{"usuarioSistema", u.UsuarioSistema, "Ingresa el usuario del sistema"},
		{"nombre", u.Nombre, "Ingresa el nombre"},
		{"apellido", u.Apellido, "Ingresa el apellido"},
		{"rut", u.RUT, "Ingresa el RUT"},
		{"correo", u.Correo, "Ingresa el correo"},
	}
	for _, req := range required {
		if req.value == "" {
			errs = append(errs, FieldError{Field: req.field, Message: req.message})
		}
	}
	return errs
}
