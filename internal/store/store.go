package store

import (
	"context"

	"github.com/moveplanner/estimator/internal/store/model"
	"gorm.io/gorm"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Building() Building
	HeavyItem() HeavyItem
	Blackout() Blackout
	Crew() Crew
	HourModifier() HourModifier
	MovingMeta() MovingMeta
	StairModifier() StairModifier
	InitialMigration(ctx context.Context) error
	Seed(ctx context.Context, data SeedData) error
	Statistics(ctx context.Context) (model.CatalogStats, error)
	Close() error
}

type DataStore struct {
	db            *gorm.DB
	building      Building
	heavyItem     HeavyItem
	blackout      Blackout
	crew          Crew
	hourModifier  HourModifier
	movingMeta    MovingMeta
	stairModifier StairModifier
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		db:            db,
		building:      NewBuildingStore(db),
		heavyItem:     NewHeavyItemStore(db),
		blackout:      NewBlackoutStore(db),
		crew:          NewCrewStore(db),
		hourModifier:  NewHourModifierStore(db),
		movingMeta:    NewMovingMetaStore(db),
		stairModifier: NewStairModifierStore(db),
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) Building() Building {
	return s.building
}

func (s *DataStore) HeavyItem() HeavyItem {
	return s.heavyItem
}

func (s *DataStore) Blackout() Blackout {
	return s.blackout
}

func (s *DataStore) Crew() Crew {
	return s.crew
}

func (s *DataStore) HourModifier() HourModifier {
	return s.hourModifier
}

func (s *DataStore) MovingMeta() MovingMeta {
	return s.movingMeta
}

func (s *DataStore) StairModifier() StairModifier {
	return s.stairModifier
}

// InitialMigration creates or updates the catalog tables from the models.
// Deployments running the sql migrations do not need it.
func (s *DataStore) InitialMigration(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&model.BuildingType{},
		&model.Building{},
		&model.HeavyItem{},
		&model.Blackout{},
		&model.Crew{},
		&model.HourModifier{},
		&model.MovingMeta{},
		&model.StairModifier{},
	)
}

func (s *DataStore) Statistics(ctx context.Context) (model.CatalogStats, error) {
	stats := model.CatalogStats{}
	db := s.db.WithContext(ctx)

	counters := []struct {
		model any
		dst   *int64
	}{
		{&model.Building{}, &stats.Buildings},
		{&model.HeavyItem{}, &stats.HeavyItems},
		{&model.Crew{}, &stats.Crews},
	}
	for _, c := range counters {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			return model.CatalogStats{}, err
		}
	}

	blackouts, err := s.blackout.List(ctx, NewBlackoutQueryFilter())
	if err != nil {
		return model.CatalogStats{}, err
	}
	stats.BlackoutsByMeridian = make(map[model.Meridian]int64)
	for _, b := range blackouts {
		stats.BlackoutsByMeridian[b.Meridian]++
	}

	return stats, nil
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
