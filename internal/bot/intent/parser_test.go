package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMenuRequests(t *testing.T) {
	cases := []string{
		"hola",
		"Hola",
		"  BUENAS  ",
		"buenos dias",
		"buenas tardes",
		"buenas noches",
		"menu",
		"MENU",
		"mándame el menu por favor",
		"qué venden",
		"que venden?",
		// Menu detection wins over the order pattern.
		"menu x 2",
	}

	for _, text := range cases {
		got := Classify(text)
		assert.Equal(t, KindMenuRequest, got.Kind, "input %q", text)
	}
}

func TestClassifyOrderCommands(t *testing.T) {
	cases := []struct {
		text        string
		numberToken string
		quantity    int
	}{
		{"2001 x 2", "2001", 2},
		{" 2001   x   3 ", "2001", 3},
		{"2001X2", "2001", 2},
		{"02 x 1", "02", 1},
		// Split happens on the FIRST "x"; the rest must still parse.
		{"7 x 4", "7", 4},
	}

	for _, tc := range cases {
		got := Classify(tc.text)
		assert.Equal(t, KindOrder, got.Kind, "input %q", tc.text)
		assert.Equal(t, tc.numberToken, got.Command.NumberToken, "input %q", tc.text)
		assert.Equal(t, tc.quantity, got.Command.Quantity, "input %q", tc.text)
	}
}

func TestClassifyFormatErrors(t *testing.T) {
	cases := []string{
		"2001 x dos",
		"2001 x",
		"x",
		"taxi",
		// Two "x"s: right side of the first split is "1 x 2".
		"2001 x 1 x 2",
	}

	for _, text := range cases {
		got := Classify(text)
		assert.Equal(t, KindFormatError, got.Kind, "input %q", text)
	}
}

func TestClassifyUnrecognized(t *testing.T) {
	for _, text := range []string{"gracias", "ok", "", "   "} {
		got := Classify(text)
		assert.Equal(t, KindUnrecognized, got.Kind, "input %q", text)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := Classify("2001 x 2")
	second := Classify("2001 x 2")
	assert.Equal(t, first, second)
}
