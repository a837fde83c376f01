package suit

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Suit is one of the four Swiss suits. The zero value means no suit.
type Suit string

const (
	Rosen    Suit = "rosen"
	Schellen Suit = "schellen"
	Schilten Suit = "schilten"
	Eichel   Suit = "eichel"
)

// All lists the suits in deck order.
var All = []Suit{Rosen, Schellen, Schilten, Eichel}

var Stdout io.Writer = color.Output

var paints = map[Suit]func(string, ...interface{}) string{
	Rosen:    color.New(color.FgHiRed).SprintfFunc(),
	Schellen: color.New(color.FgHiYellow).SprintfFunc(),
	Schilten: color.New(color.FgHiGreen).SprintfFunc(),
	Eichel:   color.New(color.FgHiCyan).SprintfFunc(),
}

func (s Suit) Paint(text string) string {
	return s.Paintf("%s", text)
}

func (s Suit) Paintf(format string, args ...interface{}) string {
	paint, ok := paints[s]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return paint(format, args...)
}

func (s Suit) Valid() bool {
	_, ok := paints[s]
	return ok
}

func (s Suit) String() string {
	return string(s)
}

func ByName(name string) (Suit, error) {
	s := Suit(name)
	if !s.Valid() {
		return "", fmt.Errorf("invalid suit '%s'", name)
	}
	return s, nil
}
