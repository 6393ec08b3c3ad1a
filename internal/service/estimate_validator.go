package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moveplanner/estimator/internal/store"
	"github.com/moveplanner/estimator/internal/store/model"
	formvalidator "github.com/moveplanner/estimator/internal/validator"
	"github.com/moveplanner/estimator/pkg/metrics"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

const (
	mnZipTag        = "mn_zip"
	zipTag          = "zip"
	notBlackoutTag  = "not_blackout"
	meridianOpenTag = "meridian_open"
	leadSourceTag   = "lead_source"
)

func estimateRules() formvalidator.Rules {
	return formvalidator.Rules{
		"first_name":           {"required", "max=100"},
		"middle_name":          {"max=100"},
		"last_name":            {"required", "max=100"},
		"email":                {"required", "email"},
		"phone":                {"required", "min=7", "max=20"},
		"origin_address":       {"required", "max=255"},
		"origin_city":          {"required", "max=100"},
		"origin_state":         {"required", "len=2", "alpha"},
		"origin_zip":           {"required", mnZipTag},
		"origin_building":      {"required", "numeric"},
		"destination_address":  {"required", "max=255"},
		"destination_city":     {"required", "max=100"},
		"destination_state":    {"required", "len=2", "alpha"},
		"destination_zip":      {"required", zipTag},
		"destination_building": {"required", "numeric"},
		"move_date":            {"required", "datetime=" + model.BlackoutDateLayout, notBlackoutTag},
		"move_time":            {"required", "oneof=morning afternoon flexible", meridianOpenTag + "=move_date"},
		"storage":              {"boolean"},
		"storage_months":       {"numeric", "min=1"},
		"packing":              {"boolean"},
		"lead_source":          {leadSourceTag},
		"comments":             {"max=2000"},
	}
}

func estimateMessages() formvalidator.Messages {
	return formvalidator.Messages{
		"first_name.required":     "We need your first name! And if you give us your last name, we'll need your middle name too! Don't ask why!",
		"origin_zip.mn_zip":       "We only move from Minnesota. Please enter a Minnesota zip code.",
		"move_date.not_blackout":  "We are not booking moves on that date. Please choose another day.",
		"move_time.meridian_open": "That time of day is not available on the selected date. Please choose another time.",
	}
}

// EstimateFormValidator validates the public move estimate form.
// Blackouts are loaded once, on the first rule needing them, and kept for the
// lifetime of the validator.
type EstimateFormValidator struct {
	*formvalidator.Validator
	zipCodes ZipCodes
	calendar *lazy[*BlackoutCalendar]
}

func NewEstimateFormValidator(zipCodes ZipCodes, blackouts store.Blackout) *EstimateFormValidator {
	v := &EstimateFormValidator{
		Validator: formvalidator.NewValidator(estimateRules(), estimateMessages()),
		zipCodes:  zipCodes,
		calendar: newLazy(func(ctx context.Context) (*BlackoutCalendar, error) {
			list, err := blackouts.List(ctx, store.NewBlackoutQueryFilter())
			if err != nil {
				metrics.IncreaseBlackoutLoadsTotalMetric(metrics.StateFailed)
				return nil, NewErrCatalogUnavailable("blackouts", err)
			}
			metrics.IncreaseBlackoutLoadsTotalMetric(metrics.StateSuccessful)
			zap.S().Named("estimate_validator").Debugw("blackouts loaded", "count", len(list))
			return NewBlackoutCalendar(list), nil
		}),
	}

	v.Register(
		formvalidator.NewValidationRule(mnZipTag, "The :attribute must be a Minnesota zip code.", v.mnZip),
		formvalidator.NewValidationRule(zipTag, "The :attribute must be a valid zip code.", v.zip),
		formvalidator.NewValidationRule(notBlackoutTag, "The :attribute is not available.", v.notBlackout),
		formvalidator.NewValidationRule(meridianOpenTag, "The :attribute is not available on the selected date.", v.meridianOpen),
		formvalidator.NewValidationRule(leadSourceTag, "The selected :attribute is invalid.", v.leadSource),
	)
	v.Sometimes("middle_name", "required", func(input formvalidator.Input) bool {
		return input["last_name"] != ""
	})
	v.Sometimes("storage_months", "required", func(input formvalidator.Input) bool {
		return formvalidator.Truthy(input["storage"])
	})

	return v
}

func (v *EstimateFormValidator) mnZip(_ context.Context, fl validator.FieldLevel) bool {
	return v.zipCodes.Contains(formvalidator.FieldString(fl))
}

func (v *EstimateFormValidator) zip(_ context.Context, fl validator.FieldLevel) bool {
	return ValidZip(formvalidator.FieldString(fl))
}

func (v *EstimateFormValidator) leadSource(_ context.Context, fl validator.FieldLevel) bool {
	return funk.ContainsString(leadSources, formvalidator.FieldString(fl))
}

func (v *EstimateFormValidator) notBlackout(ctx context.Context, fl validator.FieldLevel) bool {
	day, err := time.Parse(model.BlackoutDateLayout, formvalidator.FieldString(fl))
	if err != nil {
		return true
	}

	calendar, err := v.calendar.Get(ctx)
	if err != nil {
		formvalidator.Abort(ctx, err)
		return true
	}

	return !calendar.FullDay(day)
}

// meridianOpen reads the date from the field named by the rule parameter.
func (v *EstimateFormValidator) meridianOpen(ctx context.Context, fl validator.FieldLevel) bool {
	date, _ := formvalidator.InputFromContext(ctx)[fl.Param()].(string)
	day, err := time.Parse(model.BlackoutDateLayout, date)
	if err != nil {
		return true
	}

	calendar, err := v.calendar.Get(ctx)
	if err != nil {
		formvalidator.Abort(ctx, err)
		return true
	}

	return calendar.Open(day, formvalidator.FieldString(fl))
}
