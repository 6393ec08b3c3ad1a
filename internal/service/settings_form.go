package service

import (
	"context"

	"github.com/moveplanner/estimator/internal/store"
	formvalidator "github.com/moveplanner/estimator/internal/validator"
)

const settingsFormName = "settings"

type CrewOption struct {
	ID         uint    `json:"id"`
	Size       int     `json:"size"`
	HourlyRate float64 `json:"hourlyRate"`
}

type HeavyItemFee struct {
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
}

type StairModifierOption struct {
	Flights  int     `json:"flights"`
	Modifier float64 `json:"modifier"`
}

// SettingsDefaults holds the current estimator settings shown in the back office form.
type SettingsDefaults struct {
	Buildings      map[uint]string       `json:"buildings"`
	Crews          []CrewOption          `json:"crews"`
	HeavyItems     []HeavyItemFee        `json:"heavyItems"`
	HourModifiers  map[uint]float64      `json:"hourModifiers"`
	MovingMeta     map[string]string     `json:"movingMeta"`
	StairModifiers []StairModifierOption `json:"stairModifiers"`
}

type SettingsForm struct {
	validator      formvalidator.Validable
	buildings      store.Building
	crews          store.Crew
	heavyItems     store.HeavyItem
	hourModifiers  store.HourModifier
	movingMeta     store.MovingMeta
	stairModifiers store.StairModifier
}

func NewSettingsForm(
	validator formvalidator.Validable,
	buildings store.Building,
	crews store.Crew,
	heavyItems store.HeavyItem,
	hourModifiers store.HourModifier,
	movingMeta store.MovingMeta,
	stairModifiers store.StairModifier,
) *SettingsForm {
	return &SettingsForm{
		validator:      validator,
		buildings:      buildings,
		crews:          crews,
		heavyItems:     heavyItems,
		hourModifiers:  hourModifiers,
		movingMeta:     movingMeta,
		stairModifiers: stairModifiers,
	}
}

func (f *SettingsForm) Valid(ctx context.Context, input formvalidator.Input) (bool, error) {
	return valid(ctx, settingsFormName, f.validator, input)
}

func (f *SettingsForm) Errors() formvalidator.MessageBag {
	return f.validator.Errors()
}

func (f *SettingsForm) GetDefaults(ctx context.Context) (*SettingsDefaults, error) {
	buildings, err := buildingLabels(ctx, f.buildings)
	if err != nil {
		return nil, err
	}

	defaults := &SettingsDefaults{
		Buildings:      buildings,
		Crews:          []CrewOption{},
		HeavyItems:     []HeavyItemFee{},
		HourModifiers:  map[uint]float64{},
		MovingMeta:     map[string]string{},
		StairModifiers: []StairModifierOption{},
	}

	crews, err := f.crews.List(ctx)
	if err != nil {
		return nil, NewErrCatalogUnavailable("crews", err)
	}
	for _, c := range crews {
		defaults.Crews = append(defaults.Crews, CrewOption{ID: c.ID, Size: c.Size, HourlyRate: c.HourlyRate})
	}

	items, err := f.heavyItems.List(ctx)
	if err != nil {
		return nil, NewErrCatalogUnavailable("heavy items", err)
	}
	for _, item := range items {
		defaults.HeavyItems = append(defaults.HeavyItems, HeavyItemFee{Name: item.Label, Fee: item.Fee})
	}

	modifiers, err := f.hourModifiers.List(ctx)
	if err != nil {
		return nil, NewErrCatalogUnavailable("hour modifiers", err)
	}
	for _, m := range modifiers {
		defaults.HourModifiers[m.BuildingID] = m.Hours
	}

	meta, err := f.movingMeta.List(ctx)
	if err != nil {
		return nil, NewErrCatalogUnavailable("moving meta", err)
	}
	for _, m := range meta {
		defaults.MovingMeta[m.Key] = m.Value
	}

	stairs, err := f.stairModifiers.List(ctx)
	if err != nil {
		return nil, NewErrCatalogUnavailable("stair modifiers", err)
	}
	for _, s := range stairs {
		defaults.StairModifiers = append(defaults.StairModifiers, StairModifierOption{Flights: s.Flights, Modifier: s.Modifier})
	}

	return defaults, nil
}
