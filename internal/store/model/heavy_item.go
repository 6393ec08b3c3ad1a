package model

type HeavyItem struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Label string  `json:"label" gorm:"type:VARCHAR(100);not null;unique"`
	Fee   float64 `json:"fee" gorm:"not null;default:0"`
}

type HeavyItemList []HeavyItem
