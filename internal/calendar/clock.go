// Package calendar implements the in-game date clock: a day/month/year
// counter driven by real elapsed time scaled by a speed multiplier.
package calendar

import "fmt"

// Speed presets bound to the numpad keys.
const (
	SpeedNormal = 1.0
	SpeedFast   = 3.0
	SpeedFaster = 10.0
)

// Preset selects one of the fixed simulation speeds.
type Preset int

const (
	PresetNormal Preset = iota + 1
	PresetFast
	PresetFaster
)

// Speed returns the multiplier for the preset, or 0 for an unknown preset.
func (p Preset) Speed() float64 {
	switch p {
	case PresetNormal:
		return SpeedNormal
	case PresetFast:
		return SpeedFast
	case PresetFaster:
		return SpeedFaster
	}
	return 0
}

// daysInMonth is indexed by month-1. February is always 28 days: the
// calendar deliberately ignores leap years.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// monthNames are Polish genitive month names, as used in a written date
// ("12 stycznia 1960").
var monthNames = [12]string{
	"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
	"lipca", "sierpnia", "września", "października", "listopada", "grudnia",
}

// DaysIn returns the length of month m (1-12) in the simplified calendar.
func DaysIn(m int) int {
	if m < 1 || m > 12 {
		return 30
	}
	return daysInMonth[m-1]
}

// MonthName returns the fixed display name for month m, or "" when m is
// out of range.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNames[m-1]
}

// Date is a calendar day.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ISO formats the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Next returns the following day.
func (d Date) Next() Date {
	d.Day++
	if d.Day > DaysIn(d.Month) {
		d.Day = 1
		d.Month++
		if d.Month > 12 {
			d.Month = 1
			d.Year++
		}
	}
	return d
}

// StartDate is the date every new campaign begins on.
var StartDate = Date{Year: 1960, Month: 1, Day: 12}

// Clock accumulates scaled elapsed seconds and turns every whole unit into
// one in-game day.
type Clock struct {
	date  Date
	accum float64 // leftover fraction of a day, in [0,1) after Advance
	speed float64 // 0 = paused
}

// NewClock returns a clock at StartDate running at normal speed.
func NewClock() *Clock {
	return NewClockAt(StartDate)
}

// NewClockAt returns a clock starting on d at normal speed.
func NewClockAt(d Date) *Clock {
	return &Clock{date: d, speed: SpeedNormal}
}

// Date returns the current day.
func (c *Clock) Date() Date { return c.date }

// Speed returns the current multiplier.
func (c *Clock) Speed() float64 { return c.speed }

// Accumulator returns the carried fraction of a day.
func (c *Clock) Accumulator() float64 { return c.accum }

// Paused reports whether the clock is halted.
func (c *Clock) Paused() bool { return c.speed <= 0 }

// Advance adds elapsed*speed to the accumulator and rolls over one day per
// whole unit. There is no cap on the number of days per call, so high
// speeds never skip days. It returns the number of days that passed.
func (c *Clock) Advance(elapsed float64) int {
	if c.speed <= 0 || elapsed <= 0 {
		return 0
	}
	c.accum += elapsed * c.speed
	days := 0
	for c.accum >= 1.0 {
		c.accum -= 1.0
		c.date = c.date.Next()
		days++
	}
	return days
}

// SetSpeed sets the multiplier. Zero halts the clock but keeps the
// accumulated fraction. Negative values are treated as zero.
func (c *Clock) SetSpeed(v float64) {
	if v < 0 {
		v = 0
	}
	c.speed = v
}

// TogglePause stops a running clock, or restarts a stopped one at normal
// speed.
func (c *Clock) TogglePause() {
	if c.speed > 0 {
		c.speed = 0
		return
	}
	c.speed = SpeedNormal
}

// ApplyPreset switches to one of the numpad speeds.
func (c *Clock) ApplyPreset(p Preset) {
	if s := p.Speed(); s > 0 {
		c.speed = s
	}
}

// Format renders the current date as "{day} {month} {year}".
func (c *Clock) Format() string {
	return fmt.Sprintf("%d %s %d", c.date.Day, MonthName(c.date.Month), c.date.Year)
}
