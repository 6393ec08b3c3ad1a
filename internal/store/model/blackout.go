package model

import (
	"encoding/json"
	"time"
)

const (
	// BlackoutDateLayout is the layout of Blackout.Date.
	BlackoutDateLayout = "2006-01-02"
)

type Meridian string

const (
	MeridianMorning   Meridian = "am"
	MeridianAfternoon Meridian = "pm"
	MeridianAllDay    Meridian = "all"
)

// Blackout marks a date, or half of it, on which new moves cannot be booked.
type Blackout struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	Date     string   `json:"date" gorm:"type:VARCHAR(10);not null;index"`
	Meridian Meridian `json:"meridian" gorm:"type:VARCHAR(3);not null;default:'all'"`
	Reason   string   `json:"reason" gorm:"type:VARCHAR(255)"`
}

type BlackoutList []Blackout

func (b Blackout) String() string {
	val, _ := json.Marshal(b)
	return string(val)
}

func (b Blackout) Day() (time.Time, error) {
	return time.Parse(BlackoutDateLayout, b.Date)
}

// Morning reports whether the blackout covers the morning. Unknown meridians
// cover the whole day.
func (b Blackout) Morning() bool {
	return b.Meridian != MeridianAfternoon
}

// Afternoon reports whether the blackout covers the afternoon. Unknown meridians
// cover the whole day.
func (b Blackout) Afternoon() bool {
	return b.Meridian != MeridianMorning
}
