package store

import (
	"context"
	"errors"

	"github.com/moveplanner/estimator/internal/store/model"
	"gorm.io/gorm"
)

type StairModifier interface {
	List(ctx context.Context) (model.StairModifierList, error)
	Create(ctx context.Context, modifier model.StairModifier) (*model.StairModifier, error)
}

type StairModifierStore struct {
	db *gorm.DB
}

var _ StairModifier = (*StairModifierStore)(nil)

func NewStairModifierStore(db *gorm.DB) StairModifier {
	return &StairModifierStore{db: db}
}

func (s *StairModifierStore) List(ctx context.Context) (model.StairModifierList, error) {
	var modifiers model.StairModifierList
	if err := getDB(ctx, s.db).Order("flights").Find(&modifiers).Error; err != nil {
		return nil, err
	}
	return modifiers, nil
}

func (s *StairModifierStore) Create(ctx context.Context, modifier model.StairModifier) (*model.StairModifier, error) {
	if err := getDB(ctx, s.db).Create(&modifier).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &modifier, nil
}
