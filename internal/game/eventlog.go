package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	eventLogMaxEntries = 8
	eventLogLineHeight = 16
	eventLogWidth      = 300
	eventLogRecent     = 2 // newest entries drawn highlighted
)

// Event is one line in the campaign event log.
type Event struct {
	Date    string // display date when the event happened
	Message string
}

// EventLog is a ring buffer of recent campaign events shown in the corner
// of the map.
type EventLog struct {
	entries []Event
	head    int
	count   int
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{entries: make([]Event, eventLogMaxEntries)}
}

// Add appends an event, overwriting the oldest once full.
func (l *EventLog) Add(date, msg string) {
	l.entries[l.head] = Event{Date: date, Message: msg}
	l.head = (l.head + 1) % eventLogMaxEntries
	if l.count < eventLogMaxEntries {
		l.count++
	}
}

// Recent returns entries oldest first.
func (l *EventLog) Recent() []Event {
	out := make([]Event, l.count)
	for i := 0; i < l.count; i++ {
		idx := (l.head - l.count + i + eventLogMaxEntries) % eventLogMaxEntries
		out[i] = l.entries[idx]
	}
	return out
}

// Draw renders the log anchored to the bottom-left corner, newest last.
func (l *EventLog) Draw(screen *ebiten.Image, screenH int) {
	entries := l.Recent()
	if len(entries) == 0 {
		return
	}
	h := len(entries)*eventLogLineHeight + 8
	y := screenH - h - 5
	vector.FillRect(screen, 5, float32(y), eventLogWidth, float32(h), color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)

	y += 4
	for i, e := range entries {
		c := color.RGBA{R: 150, G: 160, B: 150, A: 255}
		if i >= len(entries)-eventLogRecent {
			c = hudTextColor
		}
		drawText(screen, fmt.Sprintf("%s  %s", e.Date, e.Message), 10, float64(y), c)
		y += eventLogLineHeight
	}
}
