// Package intent classifies inbound WhatsApp text into the three things the
// bot understands: a menu request, an order command, or noise.
package intent

import (
	"strconv"
	"strings"

	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/domain/entity"
)

type Kind int

const (
	// KindMenuRequest covers greetings and anything mentioning the menu.
	KindMenuRequest Kind = iota
	// KindOrder is a well-formed "<number> x <qty>" command.
	KindOrder
	// KindFormatError is an attempted order command whose quantity did not
	// parse; the caller replies with the corrective example.
	KindFormatError
	// KindUnrecognized is everything else; the caller replies with the
	// fallback prompt.
	KindUnrecognized
)

// Intent is the classification result. Command is populated only for KindOrder.
type Intent struct {
	Kind    Kind
	Command entity.OrderCommand
}

// greetings are matched exactly against the normalized text. Users greet the
// bot the way they'd greet a person, so the set is Spanish like the audience.
var greetings = []string{"hola", "buenas", "buenos dias", "buenas tardes", "buenas noches"}

// Classify is a pure function of the raw message text. Matching is
// case-insensitive via lowercasing; accented variants are listed explicitly
// because no accent folding is applied.
//
// Menu detection runs first, so "menu x 2" is a menu request, not an order.
func Classify(rawText string) Intent {
	text := strings.ToLower(strings.TrimSpace(rawText))

	if isMenuRequest(text) {
		return Intent{Kind: KindMenuRequest}
	}

	// Order format: "<number> x <qty>", split on the FIRST "x".
	if strings.Contains(text, "x") {
		left, right, _ := strings.Cut(text, "x")
		qty, err := strconv.Atoi(strings.TrimSpace(right))
		if err != nil {
			return Intent{Kind: KindFormatError}
		}
		return Intent{
			Kind: KindOrder,
			Command: entity.OrderCommand{
				NumberToken: strings.TrimSpace(left),
				Quantity:    qty,
			},
		}
	}

	return Intent{Kind: KindUnrecognized}
}

func isMenuRequest(text string) bool {
	for _, g := range greetings {
		if text == g {
			return true
		}
	}
	return strings.Contains(text, "menu") ||
		strings.Contains(text, "qué venden") ||
		strings.Contains(text, "que venden")
}
