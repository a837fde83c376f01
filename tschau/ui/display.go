package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
	"github.com/ratel-online/tschau-sepp/tschau/event"
	"github.com/ratel-online/tschau-sepp/tschau/msg"
)

// Pace is the pause after every printed line.
var Pace = time.Second

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	fmt.Fprintln(suit.Stdout, args...)
	time.Sleep(Pace)
}

// Narrator prints every game event as it happens.
type Narrator struct{}

func (Narrator) OnEvent(payload event.Payload) {
	if line := msg.Message.Describe(payload); line != "" {
		Println(line)
	}
}
