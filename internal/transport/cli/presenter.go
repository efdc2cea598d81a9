// Package cli is the terminal surface of the storefront: it draws cart views
// and notifications, asks for confirmations, and opens outbound links.
package cli

import (
	"fmt"
	"io"

	"github.com/ventasbronca/storefront/internal/app/cart/contracts"
	"github.com/ventasbronca/storefront/internal/app/cart/view"
)

// Presenter draws cart views and notifications. It implements
// contracts.Renderer and contracts.Notifier.
type Presenter struct {
	out io.Writer
}

// NewPresenter creates a presenter writing to out.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// Render draws the full cart listing with totals and checkout availability.
func (p *Presenter) Render(v view.CartView) {
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "%s %s\n",
		titleStyle.Render("Carrito VentasBronca"),
		badgeStyle.Render(fmt.Sprintf("%d", v.TotalItems)))

	if v.Empty {
		fmt.Fprintln(p.out, mutedStyle.Render("Tu carrito está vacío"))
		fmt.Fprintln(p.out, mutedStyle.Render("Finalizar compra: no disponible"))
		return
	}

	for _, line := range v.Lines {
		fmt.Fprintf(p.out, "  %s %s\n",
			itemNameStyle.Render(line.Name),
			mutedStyle.Render(fmt.Sprintf("(SKU: %s)", line.SKU)))
		fmt.Fprintf(p.out, "    %d × %s  %s\n",
			line.Quantity, line.UnitPrice, subtotalStyle.Render(line.Subtotal))
	}

	fmt.Fprintf(p.out, "  Total artículos: %d\n", v.TotalItems)
	fmt.Fprintf(p.out, "  Total: %s\n", totalStyle.Render(v.TotalPrice))
	if v.CheckoutEnabled {
		fmt.Fprintln(p.out, successStyle.Render("Finalizar compra: disponible"))
	}
}

// Notify shows one transient notification, styled by kind.
func (p *Presenter) Notify(n contracts.Notification) {
	var line string
	switch n.Kind {
	case contracts.KindSuccess:
		line = successStyle.Render("✔ " + n.Message)
	case contracts.KindError:
		line = errorStyle.Render("✖ " + n.Message)
	default:
		line = infoStyle.Render("ℹ " + n.Message)
	}
	fmt.Fprintln(p.out, line)
}
