package identity

// Region is one Chilean region with its comunas, in display order.
type Region struct {
	Name    string
	Comunas []string
}

// Northern-to-central subset shipped with the storefront; the picker data,
// not an exhaustive gazetteer.
var regions = []Region{
	{
		Name:    "Región de Arica y Parinacota",
		Comunas: []string{"Arica", "Camarones", "Putre", "General Lagos"},
	},
	{
		Name:    "Región de Tarapacá",
		Comunas: []string{"Iquique", "Alto Hospicio", "Pozo Almonte"},
	},
	{
		Name:    "Región de Antofagasta",
		Comunas: []string{"Antofagasta", "Mejillones", "Taltal", "Calama", "Tocopilla"},
	},
	{
		Name: "Región Metropolitana de Santiago",
		Comunas: []string{
			"Santiago", "Cerrillos", "Cerro Navia", "Conchalí", "El Bosque",
			"Estación Central", "Huechuraba", "Independencia", "La Cisterna",
			"La Florida", "La Granja", "La Pintana", "La Reina", "Las Condes",
			"Lo Barnechea", "Lo Espejo", "Lo Prado", "Macul", "Maipú", "Ñuñoa",
			"Pedro Aguirre Cerda", "Peñalolén", "Providencia", "Pudahuel",
			"Quilicura", "Quinta Normal", "Recoleta", "Renca", "San Joaquín",
			"San Miguel", "San Ramón", "Vitacura",
		},
	},
	{
		Name: "Región de Valparaíso",
		Comunas: []string{
			"Valparaíso", "Viña del Mar", "Concón", "Quilpué", "Villa Alemana",
			"Quillota", "San Antonio", "Los Andes", "San Felipe",
		},
	},
}

// Regions returns the region names in display order.
func Regions() []string {
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = r.Name
	}
	return names
}

// ComunasFor returns the comunas of a region in display order.
func ComunasFor(region string) ([]string, bool) {
	for _, r := range regions {
		if r.Name == region {
			comunas := make([]string, len(r.Comunas))
			copy(comunas, r.Comunas)
			return comunas, true
		}
	}
	return nil, false
}

// ComunaInRegion reports whether the comuna belongs to the region.
func ComunaInRegion(region, comuna string) bool {
	comunas, ok := ComunasFor(region)
	if !ok {
		return false
	}
	for _, c := range comunas {
		if c == comuna {
			return true
		}
	}
	return false
}
