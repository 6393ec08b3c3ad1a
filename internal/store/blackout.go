package store

import (
	"context"
	"errors"

	"github.com/moveplanner/estimator/internal/store/model"
	"gorm.io/gorm"
)

type Blackout interface {
	List(ctx context.Context, filter *BlackoutQueryFilter) (model.BlackoutList, error)
	Create(ctx context.Context, blackout model.Blackout) (*model.Blackout, error)
	Delete(ctx context.Context, id uint) error
}

type BlackoutStore struct {
	db *gorm.DB
}

var _ Blackout = (*BlackoutStore)(nil)

func NewBlackoutStore(db *gorm.DB) Blackout {
	return &BlackoutStore{db: db}
}

func (b *BlackoutStore) List(ctx context.Context, filter *BlackoutQueryFilter) (model.BlackoutList, error) {
	var blackouts model.BlackoutList
	tx := getDB(ctx, b.db)
	if filter != nil {
		tx = BaseQuerier(*filter).apply(tx)
	}
	if err := tx.Order("date").Order("id").Find(&blackouts).Error; err != nil {
		return nil, err
	}
	return blackouts, nil
}

func (b *BlackoutStore) Create(ctx context.Context, blackout model.Blackout) (*model.Blackout, error) {
	if _, err := blackout.Day(); err != nil {
		return nil, err
	}
	if blackout.Meridian == "" {
		blackout.Meridian = model.MeridianAllDay
	}
	if err := getDB(ctx, b.db).Create(&blackout).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &blackout, nil
}

func (b *BlackoutStore) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, b.db).Delete(&model.Blackout{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
