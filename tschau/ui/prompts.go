package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ratel-online/tschau-sepp/tschau/card"
	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
)

var Stdin io.Reader = os.Stdin

var scanner *bufio.Scanner

// SetInput replaces the reader prompts consume.
func SetInput(r io.Reader) {
	Stdin = r
	scanner = nil
}

type Command string

const (
	CommandPlay   Command = "PLAY"
	CommandDraw   Command = "DRAW"
	CommandPass   Command = "PASS"
	CommandTschau Command = "TSCHAU"
	CommandSepp   Command = "SEPP"
	CommandQuit   Command = "QUIT"
)

// Action is what a player chose at their turn. Card is set for CommandPlay only.
type Action struct {
	Command Command
	Card    card.Card
}

func readLine() (string, error) {
	if scanner == nil {
		scanner = bufio.NewScanner(Stdin)
	}
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func PromptString(message string) (string, error) {
	for {
		Println(message)
		input, err := readLine()
		if err != nil {
			return "", err
		}
		if input == "" {
			Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func promptLowercaseString(message string) (string, error) {
	input, err := PromptString(message)
	return strings.ToLower(input), err
}

func promptUppercaseString(message string) (string, error) {
	input, err := PromptString(message)
	return strings.ToUpper(input), err
}

// PromptAction lists the playable cards under letters next to the commands that apply.
// A draw is offered while cards are left, a pass once none are.
func PromptAction(playable []card.Card, canDraw bool) (Action, error) {
	sequence := runeSequence{}
	labels := make([]string, 0, len(playable))
	cardOptions := make(map[string]card.Card)
	for _, playableCard := range playable {
		label := string(sequence.next())
		labels = append(labels, label)
		cardOptions[label] = playableCard
	}

	lines := []string{"Select a card to play:"}
	for _, label := range labels {
		lines = append(lines, fmt.Sprintf("%s (enter %s)", cardOptions[label], label))
	}
	if canDraw {
		lines = append(lines, "or enter 'draw' to draw")
	} else {
		lines = append(lines, "or enter 'pass', no cards are left to draw")
	}
	lines = append(lines, "Calls: 'tschau', 'sepp'. Enter 'quit' to leave.")
	message := strings.Join(lines, "\n")

	for {
		selected, err := promptUppercaseString(message)
		if err != nil {
			return Action{}, err
		}
		switch command := Command(selected); command {
		case CommandTschau, CommandSepp, CommandQuit:
			return Action{Command: command}, nil
		case CommandDraw:
			if canDraw {
				return Action{Command: command}, nil
			}
		case CommandPass:
			if !canDraw {
				return Action{Command: command}, nil
			}
		}
		if selectedCard, found := cardOptions[selected]; found {
			return Action{Command: CommandPlay, Card: selectedCard}, nil
		}
		Printfln("No option assigned to '%s'", selected)
	}
}

func PromptSuit(suits []suit.Suit) (suit.Suit, error) {
	names := make([]string, 0, len(suits))
	for _, s := range suits {
		names = append(names, fmt.Sprintf("'%s'", s.Paint(s.String())))
	}
	message := fmt.Sprintf("Select a suit: %s?", strings.Join(names, ", "))
	for {
		name, err := promptLowercaseString(message)
		if err != nil {
			return "", err
		}
		chosen, err := suit.ByName(name)
		if err != nil {
			Printfln("Unknown suit '%s'", name)
			continue
		}
		return chosen, nil
	}
}
