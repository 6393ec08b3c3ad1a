package store

import (
	"context"
	"errors"

	"github.com/moveplanner/estimator/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovingMeta interface {
	List(ctx context.Context) (model.MovingMetaList, error)
	Get(ctx context.Context, key string) (*model.MovingMeta, error)
	Set(ctx context.Context, key, value string) error
}

type MovingMetaStore struct {
	db *gorm.DB
}

var _ MovingMeta = (*MovingMetaStore)(nil)

func NewMovingMetaStore(db *gorm.DB) MovingMeta {
	return &MovingMetaStore{db: db}
}

func (m *MovingMetaStore) List(ctx context.Context) (model.MovingMetaList, error) {
	var meta model.MovingMetaList
	if err := getDB(ctx, m.db).Order("key").Find(&meta).Error; err != nil {
		return nil, err
	}
	return meta, nil
}

func (m *MovingMetaStore) Get(ctx context.Context, key string) (*model.MovingMeta, error) {
	var meta model.MovingMeta
	if err := getDB(ctx, m.db).Where("key = ?", key).First(&meta).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &meta, nil
}

func (m *MovingMetaStore) Set(ctx context.Context, key, value string) error {
	meta := model.MovingMeta{Key: key, Value: value}
	return getDB(ctx, m.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&meta).Error
}
