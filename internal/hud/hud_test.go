package hud

import (
	"testing"

	"github.com/Garsondee/Grand-Strategy/internal/calendar"
	"github.com/stretchr/testify/assert"
)

func TestUpdateFPS_Rounds(t *testing.T) {
	txt := NewFPSText()
	txt.UpdateFPS(59.6, true)
	assert.Equal(t, "FPS: 60", txt.Value)
	txt.UpdateFPS(59.4, true)
	assert.Equal(t, "FPS: 59", txt.Value)
}

func TestUpdateFPS_MissingMetricKeepsText(t *testing.T) {
	txt := NewFPSText()
	txt.UpdateFPS(0, false)
	assert.Equal(t, "FPS: ", txt.Value)
	txt.UpdateFPS(144, true)
	txt.UpdateFPS(0, false)
	assert.Equal(t, "FPS: 144", txt.Value)
}

func TestUpdateDate(t *testing.T) {
	txt := NewDateText()
	c := calendar.NewClockAt(calendar.Date{Year: 1960, Month: 9, Day: 1})
	txt.UpdateDate(c)
	assert.Equal(t, "1 września 1960", txt.Value)
}

func TestNilTextIsNoop(t *testing.T) {
	var txt *Text
	assert.NotPanics(t, func() {
		txt.UpdateFPS(60, true)
		txt.UpdateDate(calendar.NewClock())
	})
}
