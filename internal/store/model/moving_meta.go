package model

// MovingMeta is a free form estimator setting, e.g. "travel_fee" or "minimum_hours".
type MovingMeta struct {
	Key   string `gorm:"primaryKey;column:key;type:VARCHAR(100)"`
	Value string `gorm:"column:value;type:TEXT;not null"`
}

func (MovingMeta) TableName() string {
	return "moving_meta"
}

type MovingMetaList []MovingMeta
