package service

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/moveplanner/estimator/internal/store"
	"github.com/moveplanner/estimator/internal/store/model"
	formvalidator "github.com/moveplanner/estimator/internal/validator"
	"github.com/thoas/go-funk"
)

const crewTag = "crew"

func settingsRules() formvalidator.Rules {
	return formvalidator.Rules{
		"minimum_hours":  {"required", "numeric", "gte=1", "lte=12"},
		"travel_fee":     {"required", "numeric", "gte=0"},
		"hourly_rate":    {"required", "numeric", "gt=0"},
		"fuel_surcharge": {"numeric", "gte=0", "lte=100"},
		"stair_modifier": {"numeric", "gte=0"},
		"default_crew":   {"required", "numeric", crewTag},
		"offers_storage": {"boolean"},
		"storage_rate":   {"numeric", "gte=0"},
	}
}

// SettingsFormValidator validates the estimator settings form of the back office.
type SettingsFormValidator struct {
	*formvalidator.Validator
	crews *lazy[[]string]
}

func NewSettingsFormValidator(crews store.Crew) *SettingsFormValidator {
	v := &SettingsFormValidator{
		Validator: formvalidator.NewValidator(settingsRules(), formvalidator.Messages{
			"default_crew.crew": "Please pick one of the existing crews.",
		}),
		crews: newLazy(func(ctx context.Context) ([]string, error) {
			list, err := crews.List(ctx)
			if err != nil {
				return nil, NewErrCatalogUnavailable("crews", err)
			}
			return funk.Map(list, func(c model.Crew) string {
				return strconv.FormatUint(uint64(c.ID), 10)
			}).([]string), nil
		}),
	}

	v.Register(formvalidator.NewValidationRule(crewTag, "The selected :attribute is invalid.", v.crew))
	v.Sometimes("storage_rate", "required", func(input formvalidator.Input) bool {
		return formvalidator.Truthy(input["offers_storage"])
	})

	return v
}

func (v *SettingsFormValidator) crew(ctx context.Context, fl validator.FieldLevel) bool {
	ids, err := v.crews.Get(ctx)
	if err != nil {
		formvalidator.Abort(ctx, err)
		return true
	}
	return funk.ContainsString(ids, formvalidator.FieldString(fl))
}
