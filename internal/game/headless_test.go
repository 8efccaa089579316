package game

import (
	"testing"

	"github.com/Garsondee/Grand-Strategy/internal/appmode"
	"github.com/Garsondee/Grand-Strategy/internal/calendar"
	"github.com/Garsondee/Grand-Strategy/internal/camera"
	"github.com/Garsondee/Grand-Strategy/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestRunHeadless_FastForward(t *testing.T) {
	r := RunHeadless(config.Default(), HeadlessOptions{Seconds: 10, Speed: 3, TPS: 2}, nil)
	assert.Equal(t, 20, r.Frames)
	assert.Equal(t, calendar.StartDate, r.StartDate)
	assert.Equal(t, calendar.Date{Year: 1960, Month: 2, Day: 11}, r.EndDate)
	assert.Equal(t, 30, r.Days)
	assert.Equal(t, appmode.InGame, r.Mode)
	assert.Contains(t, r.String(), "1960-01-12 -> 1960-02-11 (30 days)")
}

func TestRunHeadless_FastForwardAtSixtyTPS(t *testing.T) {
	r := RunHeadless(config.Default(), HeadlessOptions{Seconds: 10, Speed: 3, TPS: 60}, nil)
	assert.Equal(t, 600, r.Frames)
	assert.Equal(t, calendar.Date{Year: 1960, Month: 2, Day: 11}, r.EndDate)
	assert.Equal(t, 30, r.Days)
}

func TestRunHeadless_PanStaysInBounds(t *testing.T) {
	cfg := config.Default()
	r := RunHeadless(cfg, HeadlessOptions{
		Seconds: 20,
		Speed:   1,
		Pan:     camera.Input{Left: true, Down: true},
	}, nil)
	limit := cfg.Map.Width/2 + cfg.Map.Margin
	assert.InDelta(t, -limit, r.Pose.Position.X, 1e-9)
	assert.InDelta(t, -limit, r.Pose.Position.Y, 1e-9)
	assert.Contains(t, r.Snapshot, "in-bounds=true")
}

func TestRunHeadless_Paused(t *testing.T) {
	r := RunHeadless(config.Default(), HeadlessOptions{Seconds: 5, Speed: 0}, nil)
	assert.Zero(t, r.Days)
	assert.Equal(t, r.StartDate, r.EndDate)
	assert.Contains(t, r.Snapshot, "PAUSED")
}
