package service

import (
	"github.com/moveplanner/estimator/internal/store"
)

// FormProvider builds the forms served by the api. Each call returns a new form
// with its own validator, so catalog data cached by a validator lives for a
// single request.
type FormProvider struct {
	store    store.Store
	zipCodes ZipCodes
}

func NewFormProvider(s store.Store, zipCodes ZipCodes) *FormProvider {
	if zipCodes == nil {
		zipCodes = NewMNZipCodes()
	}
	return &FormProvider{
		store:    s,
		zipCodes: zipCodes,
	}
}

func (p *FormProvider) EstimateForm() *EstimateForm {
	return NewEstimateForm(
		NewEstimateFormValidator(p.zipCodes, p.store.Blackout()),
		p.store.HeavyItem(),
		p.store.Building(),
	)
}

func (p *FormProvider) SettingsForm() *SettingsForm {
	return NewSettingsForm(
		NewSettingsFormValidator(p.store.Crew()),
		p.store.Building(),
		p.store.Crew(),
		p.store.HeavyItem(),
		p.store.HourModifier(),
		p.store.MovingMeta(),
		p.store.StairModifier(),
	)
}
