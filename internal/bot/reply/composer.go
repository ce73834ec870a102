// Package reply renders the user-facing conversational text for every
// outcome. Output is plain text; the TwiML envelope is the transport's job.
package reply

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/domain/entity"
)

// Fixed replies. The audience is Spanish-speaking, same as the business.
const (
	MsgConfigError     = "⚠️ Error de configuración del negocio. Revisa BusinessConfig."
	MsgEmptyCatalog    = "⚠️ No hay productos activos en la hoja Products."
	MsgInvalidFormat   = "Formato inválido. Usa: 2001 x 2"
	MsgInvalidQuantity = "La cantidad debe ser mayor a 0. Ejemplo: 2001 x 2"
	MsgProductNotFound = "Producto no encontrado. Escribe MENU para ver opciones."
	MsgProcessingError = "Ocurrió un error procesando tu pedido. Intenta de nuevo."
	MsgFallback        = "Escribe MENU para ver opciones, o envía tu pedido (ej: 2001 x 2)."
)

// Menu renders the greeting plus one "number) name - $price" line per product
// and the ordering hint.
func Menu(cfg *entity.BusinessConfig, products []entity.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👋 Hola, bienvenido a %s.\n\n", cfg.BusinessName)
	b.WriteString("Esto es lo que tenemos hoy:\n\n")

	for _, p := range products {
		fmt.Fprintf(&b, "%s) %s - %s\n", p.Number, p.Name, amount(cfg.CurrencySymbol, p.Price))
	}

	b.WriteString("\nPara ordenar, escribe por ejemplo: 2001 x 2")
	return b.String()
}

// Confirmation renders the order receipt: line items, total, and order id.
func Confirmation(cfg *entity.BusinessConfig, order *entity.Order) string {
	var b strings.Builder
	b.WriteString("✅ ¡Pedido recibido!\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%d x %s\n", item.Quantity, item.Name)
	}
	fmt.Fprintf(&b, "Total: %s\n", amount(cfg.CurrencySymbol, order.Total))
	fmt.Fprintf(&b, "Pedido: #%s\n\n", order.ID)
	b.WriteString("Te avisaremos cuando esté listo 🙌")
	return b.String()
}

// amount formats a price with the business currency symbol. Trailing zeros
// are dropped ("2.5", "19"), matching how prices read in chat.
func amount(symbol string, value float64) string {
	return symbol + strconv.FormatFloat(value, 'f', -1, 64)
}
