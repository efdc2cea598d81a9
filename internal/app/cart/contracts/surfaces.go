package contracts

import (
	"time"

	"github.com/google/uuid"

	"github.com/ventasbronca/storefront/internal/app/cart/view"
)

// NotificationKind classifies a transient user-facing notification.
type NotificationKind string

const (
	KindSuccess NotificationKind = "success"
	KindInfo    NotificationKind = "info"
	KindError   NotificationKind = "error"
)

// DisplayTTL is how long a notification stays visible before auto-dismissal.
// Purely cosmetic; expiry has no effect on state.
const DisplayTTL = 3 * time.Second

// Notification is advisory feedback about the outcome of an operation. It is
// not part of the state contract.
type Notification struct {
	ID        string
	Kind      NotificationKind
	Message   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewNotification builds a notification stamped at now with the standard
// display TTL.
func NewNotification(kind NotificationKind, message string, now time.Time) Notification {
	return Notification{
		ID:        uuid.New().String(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(DisplayTTL),
	}
}

// Notifier shows transient notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// Confirmer asks the user a yes/no question and reports the answer. Injected
// so the decrement-to-zero and removal branches are testable without real
// interaction.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Renderer draws the current cart view. Called after every mutation.
type Renderer interface {
	Render(v view.CartView)
}

// LinkOpener hands an outbound URL to the surrounding environment. One-way;
// nothing is awaited or parsed.
type LinkOpener interface {
	Open(url string) error
}
