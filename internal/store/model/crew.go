package model

type Crew struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Size       int     `json:"size" gorm:"not null;unique"`
	HourlyRate float64 `json:"hourlyRate" gorm:"not null"`
}

type CrewList []Crew
