package model

import "encoding/json"

type BuildingType struct {
	ID    uint   `gorm:"primaryKey"`
	Label string `gorm:"type:VARCHAR(100);not null;unique"`
}

type Building struct {
	ID             uint         `gorm:"primaryKey"`
	BuildingTypeID uint         `gorm:"not null;index"`
	BuildingType   BuildingType `gorm:"constraint:OnDelete:RESTRICT;"`
}

type BuildingList []Building

func (b Building) String() string {
	val, _ := json.Marshal(b)
	return string(val)
}

// Label is the display label of the building, which is the label of its type.
func (b Building) Label() string {
	return b.BuildingType.Label
}
