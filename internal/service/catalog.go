package service

import (
	"context"

	"github.com/moveplanner/estimator/internal/store"
	"github.com/moveplanner/estimator/internal/store/model"
	"go.uber.org/zap"
)

const defaultSeedSource = "default"

type CatalogService struct {
	store store.Store
}

func NewCatalogService(store store.Store) *CatalogService {
	return &CatalogService{store: store}
}

// Seed loads the catalog from the yaml file at path, or from the built in
// catalog when path is empty.
func (c *CatalogService) Seed(ctx context.Context, path string) error {
	var (
		data   store.SeedData
		err    error
		source = path
	)
	if path == "" {
		source = defaultSeedSource
		data, err = store.DefaultSeed()
	} else {
		data, err = store.LoadSeedFile(path)
	}
	if err != nil {
		return NewErrInvalidSeed(source, err)
	}

	if err := c.store.Seed(ctx, data); err != nil {
		return NewErrInvalidSeed(source, err)
	}

	zap.S().Named("catalog_service").Infow("catalog seeded",
		"source", source,
		"buildings", len(data.Buildings),
		"heavy_items", len(data.HeavyItems),
		"blackouts", len(data.Blackouts),
		"crews", len(data.Crews),
	)
	return nil
}

func (c *CatalogService) Statistics(ctx context.Context) (model.CatalogStats, error) {
	return c.store.Statistics(ctx)
}
