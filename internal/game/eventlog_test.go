package game

import (
	"fmt"
	"testing"

	"github.com/Garsondee/Grand-Strategy/internal/appmode"
	"github.com/Garsondee/Grand-Strategy/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLog_RingOrder(t *testing.T) {
	l := NewEventLog()
	assert.Empty(t, l.Recent())
	for i := 0; i < eventLogMaxEntries+3; i++ {
		l.Add("d", fmt.Sprintf("e%d", i))
	}
	got := l.Recent()
	require.Len(t, got, eventLogMaxEntries)
	assert.Equal(t, "e3", got[0].Message)
	assert.Equal(t, fmt.Sprintf("e%d", eventLogMaxEntries+2), got[len(got)-1].Message)
}

func TestEventLog_RecordsSpeedAndMonth(t *testing.T) {
	script := &ScriptedInput{}
	g := newTestGame(t, script, WithTPS(2))
	g.Dispatch(appmode.ActionStart)
	script.Push(FrameInput{Preset: calendar.PresetFaster})
	update(t, g, 4)

	got := g.Events().Recent()
	require.Len(t, got, 2)
	assert.Equal(t, "speed 10x", got[0].Message)
	assert.Equal(t, "12 stycznia 1960", got[0].Date)
	assert.Equal(t, "new month", got[1].Message)
	assert.Equal(t, "1 lutego 1960", got[1].Date)
}
