package store

import (
	"context"

	"github.com/moveplanner/estimator/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HourModifier interface {
	List(ctx context.Context) (model.HourModifierList, error)
	Upsert(ctx context.Context, modifier model.HourModifier) (*model.HourModifier, error)
}

type HourModifierStore struct {
	db *gorm.DB
}

var _ HourModifier = (*HourModifierStore)(nil)

func NewHourModifierStore(db *gorm.DB) HourModifier {
	return &HourModifierStore{db: db}
}

func (h *HourModifierStore) List(ctx context.Context) (model.HourModifierList, error) {
	var modifiers model.HourModifierList
	if err := getDB(ctx, h.db).Order("building_id").Find(&modifiers).Error; err != nil {
		return nil, err
	}
	return modifiers, nil
}

// Upsert creates the modifier of a building or replaces its hours.
func (h *HourModifierStore) Upsert(ctx context.Context, modifier model.HourModifier) (*model.HourModifier, error) {
	result := getDB(ctx, h.db).Omit("Building").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "building_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"hours"}),
	}).Create(&modifier)
	if result.Error != nil {
		return nil, result.Error
	}
	return &modifier, nil
}
