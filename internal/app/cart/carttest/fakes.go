// Package carttest provides in-memory fakes for the cart contracts, shared
// by the use case unit tests and the integration tests.
package carttest

import (
	"context"

	"github.com/ventasbronca/storefront/internal/app/cart/contracts"
	"github.com/ventasbronca/storefront/internal/app/cart/domain"
	"github.com/ventasbronca/storefront/internal/app/cart/view"
)

// Repo is an in-memory CartRepository with failure injection. The same cart
// pointer is handed out on every Load, so interactor mutations are visible to
// the test through Cart.
type Repo struct {
	Cart      *domain.Cart
	SaveCalls int
	Saved     [][]domain.LineItem
	LoadErr   error
	SaveErr   error
}

// NewRepo builds a repo seeded with the given items.
func NewRepo(items ...domain.LineItem) *Repo {
	return &Repo{Cart: domain.ReconstructCart(items)}
}

func (r *Repo) Load(ctx context.Context) (*domain.Cart, error) {
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	return r.Cart, nil
}

func (r *Repo) Save(ctx context.Context, cart *domain.Cart) error {
	r.SaveCalls++
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Saved = append(r.Saved, cart.Items())
	return nil
}

// Notifier records every notification shown.
type Notifier struct {
	Notifications []contracts.Notification
}

func (n *Notifier) Notify(notification contracts.Notification) {
	n.Notifications = append(n.Notifications, notification)
}

// Messages returns the notification texts in order.
func (n *Notifier) Messages() []string {
	msgs := make([]string, 0, len(n.Notifications))
	for _, notification := range n.Notifications {
		msgs = append(msgs, notification.Message)
	}
	return msgs
}

// Last returns the most recent notification.
func (n *Notifier) Last() (contracts.Notification, bool) {
	if len(n.Notifications) == 0 {
		return contracts.Notification{}, false
	}
	return n.Notifications[len(n.Notifications)-1], true
}

// Renderer records every rendered view.
type Renderer struct {
	Views []view.CartView
}

func (r *Renderer) Render(v view.CartView) {
	r.Views = append(r.Views, v)
}

// Confirmer answers every prompt with a scripted boolean.
type Confirmer struct {
	Answer  bool
	Prompts []string
}

func (c *Confirmer) Confirm(prompt string) bool {
	c.Prompts = append(c.Prompts, prompt)
	return c.Answer
}

// Opener records outbound URLs.
type Opener struct {
	URLs []string
	Err  error
}

func (o *Opener) Open(url string) error {
	o.URLs = append(o.URLs, url)
	return o.Err
}
