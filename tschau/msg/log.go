package msg

import "github.com/ratel-online/tschau-sepp/tschau/event"

// Log keeps the most recent lines describing a game, oldest first.
type Log struct {
	limit int
	lines []string
}

func NewLog(limit int, lines ...string) *Log {
	l := &Log{limit: limit}
	for _, line := range lines {
		l.Append(line)
	}
	return l
}

func (l *Log) OnEvent(payload event.Payload) {
	if line := Message.Describe(payload); line != "" {
		l.Append(line)
	}
}

func (l *Log) Append(line string) {
	l.lines = append(l.lines, line)
	if l.limit > 0 && len(l.lines) > l.limit {
		l.lines = l.lines[len(l.lines)-l.limit:]
	}
}

func (l *Log) Lines() []string {
	lines := make([]string, len(l.lines))
	copy(lines, l.lines)
	return lines
}

// Last returns up to n of the most recent lines.
func (l *Log) Last(n int) []string {
	if n >= len(l.lines) {
		return l.Lines()
	}
	lines := make([]string, n)
	copy(lines, l.lines[len(l.lines)-n:])
	return lines
}
