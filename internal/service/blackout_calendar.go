package service

import (
	"time"

	"github.com/moveplanner/estimator/internal/store/model"
	"go.uber.org/zap"
)

const (
	MoveTimeMorning   = "morning"
	MoveTimeAfternoon = "afternoon"
	MoveTimeFlexible  = "flexible"
)

type halfDays struct {
	morning   bool
	afternoon bool
}

// BlackoutCalendar answers which halves of a day are blacked out.
type BlackoutCalendar struct {
	days map[string]halfDays
}

func NewBlackoutCalendar(blackouts model.BlackoutList) *BlackoutCalendar {
	c := &BlackoutCalendar{days: make(map[string]halfDays, len(blackouts))}
	for _, b := range blackouts {
		day, err := b.Day()
		if err != nil {
			zap.S().Named("blackout_calendar").Warnw("skipping blackout with invalid date", "id", b.ID, "date", b.Date)
			continue
		}
		key := day.Format(model.BlackoutDateLayout)
		h := c.days[key]
		h.morning = h.morning || b.Morning()
		h.afternoon = h.afternoon || b.Afternoon()
		c.days[key] = h
	}
	return c
}

// FullDay reports whether nothing can be booked on day.
func (c *BlackoutCalendar) FullDay(day time.Time) bool {
	h := c.days[day.Format(model.BlackoutDateLayout)]
	return h.morning && h.afternoon
}

// Open reports whether a move at moveTime on day avoids the blacked out halves.
// A flexible move can take whichever half is open.
func (c *BlackoutCalendar) Open(day time.Time, moveTime string) bool {
	h := c.days[day.Format(model.BlackoutDateLayout)]
	switch moveTime {
	case MoveTimeMorning:
		return !h.morning
	case MoveTimeAfternoon:
		return !h.afternoon
	}
	return true
}

func (c *BlackoutCalendar) Len() int {
	return len(c.days)
}
