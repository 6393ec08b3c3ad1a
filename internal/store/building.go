package store

import (
	"context"
	"errors"

	"github.com/moveplanner/estimator/internal/store/model"
	"gorm.io/gorm"
)

type Building interface {
	List(ctx context.Context) (model.BuildingList, error)
	Get(ctx context.Context, id uint) (*model.Building, error)
	GetBuildingType(ctx context.Context, id uint) (*model.BuildingType, error)
	CreateBuildingType(ctx context.Context, buildingType model.BuildingType) (*model.BuildingType, error)
	Create(ctx context.Context, building model.Building) (*model.Building, error)
}

type BuildingStore struct {
	db *gorm.DB
}

// Make sure we conform to Building interface
var _ Building = (*BuildingStore)(nil)

func NewBuildingStore(db *gorm.DB) Building {
	return &BuildingStore{db: db}
}

func (b *BuildingStore) List(ctx context.Context) (model.BuildingList, error) {
	var buildings model.BuildingList
	if err := getDB(ctx, b.db).Preload("BuildingType").Order("id").Find(&buildings).Error; err != nil {
		return nil, err
	}
	return buildings, nil
}

func (b *BuildingStore) Get(ctx context.Context, id uint) (*model.Building, error) {
	var building model.Building
	if err := getDB(ctx, b.db).Preload("BuildingType").First(&building, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &building, nil
}

func (b *BuildingStore) GetBuildingType(ctx context.Context, id uint) (*model.BuildingType, error) {
	var buildingType model.BuildingType
	if err := getDB(ctx, b.db).First(&buildingType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &buildingType, nil
}

func (b *BuildingStore) CreateBuildingType(ctx context.Context, buildingType model.BuildingType) (*model.BuildingType, error) {
	if err := getDB(ctx, b.db).Create(&buildingType).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &buildingType, nil
}

func (b *BuildingStore) Create(ctx context.Context, building model.Building) (*model.Building, error) {
	if err := getDB(ctx, b.db).Omit("BuildingType").Create(&building).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &building, nil
}
