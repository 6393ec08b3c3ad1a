package store

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/moveplanner/estimator/internal/store/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"
)

//go:embed seed.yaml
var defaultSeed []byte

// SeedData is the catalog content loaded by Seed. Buildings reference their
// type by label; hour modifiers reference their building by position (1-based)
// in Buildings.
type SeedData struct {
	Buildings      []SeedBuilding        `json:"buildings"`
	HeavyItems     []model.HeavyItem     `json:"heavyItems"`
	Blackouts      []model.Blackout      `json:"blackouts"`
	Crews          []model.Crew          `json:"crews"`
	MovingMeta     map[string]string     `json:"movingMeta"`
	StairModifiers []model.StairModifier `json:"stairModifiers"`
}

type SeedBuilding struct {
	Type  string  `json:"type"`
	Hours float64 `json:"hours"`
}

func DefaultSeed() (SeedData, error) {
	return ParseSeed(defaultSeed)
}

func LoadSeedFile(path string) (SeedData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return SeedData{}, errors.Wrap(err, "failed to read seed file")
	}
	return ParseSeed(content)
}

func ParseSeed(content []byte) (SeedData, error) {
	var data SeedData
	if err := yaml.UnmarshalStrict(content, &data); err != nil {
		return SeedData{}, errors.Wrap(err, "failed to parse seed data")
	}
	return data, nil
}

// Seed inserts data in a single transaction. Building types are shared by
// label, so two buildings of the same type produce one type row.
func (s *DataStore) Seed(ctx context.Context, data SeedData) error {
	ctx, err := s.NewTransactionContext(ctx)
	if err != nil {
		return err
	}

	if err := s.seed(ctx, data); err != nil {
		if _, rerr := Rollback(ctx); rerr != nil {
			zap.S().Named("store").Errorw("failed to rollback seed", "error", rerr)
		}
		return err
	}

	_, err = Commit(ctx)
	return err
}

func (s *DataStore) seed(ctx context.Context, data SeedData) error {
	types := make(map[string]uint)
	for i, b := range data.Buildings {
		typeID, found := types[b.Type]
		if !found {
			bt, err := s.building.CreateBuildingType(ctx, model.BuildingType{Label: b.Type})
			if err != nil {
				return fmt.Errorf("failed to create building type %q: %w", b.Type, err)
			}
			typeID = bt.ID
			types[b.Type] = typeID
		}

		building, err := s.building.Create(ctx, model.Building{BuildingTypeID: typeID})
		if err != nil {
			return fmt.Errorf("failed to create building #%d: %w", i+1, err)
		}

		if b.Hours != 0 {
			if _, err := s.hourModifier.Upsert(ctx, model.HourModifier{BuildingID: building.ID, Hours: b.Hours}); err != nil {
				return fmt.Errorf("failed to create hour modifier for building #%d: %w", i+1, err)
			}
		}
	}

	for _, item := range data.HeavyItems {
		if _, err := s.heavyItem.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to create heavy item %q: %w", item.Label, err)
		}
	}

	for _, blackout := range data.Blackouts {
		if _, err := s.blackout.Create(ctx, blackout); err != nil {
			return fmt.Errorf("failed to create blackout %s: %w", blackout.Date, err)
		}
	}

	for _, crew := range data.Crews {
		if _, err := s.crew.Create(ctx, crew); err != nil {
			return fmt.Errorf("failed to create crew of %d: %w", crew.Size, err)
		}
	}

	for key, value := range data.MovingMeta {
		if err := s.movingMeta.Set(ctx, key, value); err != nil {
			return fmt.Errorf("failed to set moving meta %q: %w", key, err)
		}
	}

	for _, modifier := range data.StairModifiers {
		if _, err := s.stairModifier.Create(ctx, modifier); err != nil {
			return fmt.Errorf("failed to create stair modifier for %d flights: %w", modifier.Flights, err)
		}
	}

	return nil
}
