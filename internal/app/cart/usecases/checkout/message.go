package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ventasbronca/storefront/internal/app/cart/domain"
)

// BuildMessage formats the order summary sent to the store: every line item
// with its quantity, unit price, and subtotal, then the grand total.
func BuildMessage(cart *domain.Cart) string {
	var b strings.Builder
	b.WriteString("¡Hola! Me interesa adquirir los siguientes productos:\n\n")

	for _, item := range cart.Items() {
		fmt.Fprintf(&b, "• %s\n", item.Name)
		fmt.Fprintf(&b, "  Cantidad: %d\n", item.Quantity)
		fmt.Fprintf(&b, "  Precio unitario: %s\n", item.Price.Format())
		fmt.Fprintf(&b, "  Subtotal: %s\n\n", item.Subtotal().Format())
	}

	fmt.Fprintf(&b, "TOTAL: %s\n\n", cart.Totals().Price.Format())
	b.WriteString("¿Están disponibles? ¡Gracias!")
	return b.String()
}

// BuildURL embeds the encoded order summary in the WhatsApp send link.
func BuildURL(phone string, cart *domain.Cart) string {
	return fmt.Sprintf(
		"https://api.whatsapp.com/send/?phone=%s&text=%s&type=phone_number&app_absent=0",
		phone, url.QueryEscape(BuildMessage(cart)))
}
