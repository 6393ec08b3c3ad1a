package store

import (
	"context"
	"errors"

	"github.com/moveplanner/estimator/internal/store/model"
	"gorm.io/gorm"
)

type Crew interface {
	List(ctx context.Context) (model.CrewList, error)
	Create(ctx context.Context, crew model.Crew) (*model.Crew, error)
}

type CrewStore struct {
	db *gorm.DB
}

var _ Crew = (*CrewStore)(nil)

func NewCrewStore(db *gorm.DB) Crew {
	return &CrewStore{db: db}
}

func (c *CrewStore) List(ctx context.Context) (model.CrewList, error) {
	var crews model.CrewList
	if err := getDB(ctx, c.db).Order("size").Find(&crews).Error; err != nil {
		return nil, err
	}
	return crews, nil
}

func (c *CrewStore) Create(ctx context.Context, crew model.Crew) (*model.Crew, error) {
	if err := getDB(ctx, c.db).Create(&crew).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &crew, nil
}
