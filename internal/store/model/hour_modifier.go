package model

// HourModifier adds hours to an estimate for moves out of or into a building.
type HourModifier struct {
	ID         uint     `gorm:"primaryKey"`
	BuildingID uint     `gorm:"not null;uniqueIndex"`
	Building   Building `gorm:"constraint:OnDelete:CASCADE;"`
	Hours      float64  `gorm:"not null;default:0"`
}

type HourModifierList []HourModifier
