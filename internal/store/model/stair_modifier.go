package model

type StairModifier struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Flights  int     `json:"flights" gorm:"not null;unique"`
	Modifier float64 `json:"modifier" gorm:"not null"`
}

type StairModifierList []StairModifier
