package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/moveplanner/estimator/internal/store"
	formvalidator "github.com/moveplanner/estimator/internal/validator"
	"github.com/moveplanner/estimator/pkg/metrics"
	"go.uber.org/zap"
)

const estimateFormName = "estimate"

type HeavyItemOption struct {
	Name string `json:"name"`
}

// EstimateDefaults holds the options rendered in the estimate form dropdowns.
type EstimateDefaults struct {
	Buildings   map[uint]string   `json:"buildings"`
	HeavyItems  []HeavyItemOption `json:"heavyItems"`
	LeadSources []string          `json:"leadSource"`
}

type EstimateForm struct {
	validator  formvalidator.Validable
	heavyItems store.HeavyItem
	buildings  store.Building
}

func NewEstimateForm(validator formvalidator.Validable, heavyItems store.HeavyItem, buildings store.Building) *EstimateForm {
	return &EstimateForm{
		validator:  validator,
		heavyItems: heavyItems,
		buildings:  buildings,
	}
}

// Valid reports whether input passes the form rules. Errors holds the messages
// when it does not.
func (f *EstimateForm) Valid(ctx context.Context, input formvalidator.Input) (bool, error) {
	return valid(ctx, estimateFormName, f.validator, input)
}

func (f *EstimateForm) Errors() formvalidator.MessageBag {
	return f.validator.Errors()
}

func (f *EstimateForm) GetDefaults(ctx context.Context) (*EstimateDefaults, error) {
	buildings, err := buildingLabels(ctx, f.buildings)
	if err != nil {
		return nil, err
	}

	items, err := f.heavyItems.List(ctx)
	if err != nil {
		return nil, NewErrCatalogUnavailable("heavy items", err)
	}
	heavyItems := make([]HeavyItemOption, 0, len(items))
	for _, item := range items {
		heavyItems = append(heavyItems, HeavyItemOption{Name: item.Label})
	}

	return &EstimateDefaults{
		Buildings:   buildings,
		HeavyItems:  heavyItems,
		LeadSources: LeadSources(),
	}, nil
}

func valid(ctx context.Context, form string, v formvalidator.Validable, input formvalidator.Input) (bool, error) {
	ok, err := v.With(input).Passes(ctx)
	switch {
	case err != nil:
		metrics.IncreaseFormValidationsTotalMetric(form, metrics.ResultError)
		zap.S().Named("forms").Errorw("failed to validate form", "form", form, "error", err)
		return false, err
	case ok:
		metrics.IncreaseFormValidationsTotalMetric(form, metrics.ResultPassed)
	default:
		metrics.IncreaseFormValidationsTotalMetric(form, metrics.ResultFailed)
		zap.S().Named("forms").Debugw("form rejected", "form", form, "fields", len(v.Errors()))
	}
	return ok, nil
}

// buildingLabels maps building ids to the label of their building type.
func buildingLabels(ctx context.Context, buildings store.Building) (map[uint]string, error) {
	list, err := buildings.List(ctx)
	if err != nil {
		return nil, NewErrCatalogUnavailable("buildings", err)
	}

	labels := make(map[uint]string, len(list))
	for _, b := range list {
		label := b.Label()
		if b.BuildingType.ID == 0 {
			buildingType, err := buildings.GetBuildingType(ctx, b.BuildingTypeID)
			if err != nil {
				if errors.Is(err, store.ErrRecordNotFound) {
					return nil, NewErrBuildingTypeNotFound(b.BuildingTypeID)
				}
				return nil, fmt.Errorf("failed to get building type %d: %w", b.BuildingTypeID, err)
			}
			label = buildingType.Label
		}
		labels[b.ID] = label
	}
	return labels, nil
}
