package store

import (
	"context"
	"errors"

	"github.com/moveplanner/estimator/internal/store/model"
	"gorm.io/gorm"
)

type HeavyItem interface {
	List(ctx context.Context) (model.HeavyItemList, error)
	Create(ctx context.Context, item model.HeavyItem) (*model.HeavyItem, error)
}

type HeavyItemStore struct {
	db *gorm.DB
}

var _ HeavyItem = (*HeavyItemStore)(nil)

func NewHeavyItemStore(db *gorm.DB) HeavyItem {
	return &HeavyItemStore{db: db}
}

func (h *HeavyItemStore) List(ctx context.Context) (model.HeavyItemList, error) {
	var items model.HeavyItemList
	if err := getDB(ctx, h.db).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (h *HeavyItemStore) Create(ctx context.Context, item model.HeavyItem) (*model.HeavyItem, error) {
	if err := getDB(ctx, h.db).Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &item, nil
}
