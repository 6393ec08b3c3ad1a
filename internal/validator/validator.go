package validator

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Input is the flat form data being validated, keyed by field name.
type Input map[string]any

// Rules maps a field name to its ordered rule tokens, e.g. "required", "max=100"
// or the tag of a registered predicate.
type Rules map[string][]string

// Messages holds custom messages keyed by "<field>.<rule>".
type Messages map[string]string

// SometimesRule adds Rule to Field only when Callback returns true for the input.
type SometimesRule struct {
	Field    string
	Rule     string
	Callback func(input Input) bool
}

// Validable is implemented by every form validator.
type Validable interface {
	With(input Input) Validable
	Passes(ctx context.Context) (bool, error)
	Errors() MessageBag
}

// Validator is a wrapper around the actual validator.
// It holds the rule and message tables of a form, runs them against the input set
// with With and collects the failures as messages.
type Validator struct {
	validator *validator.Validate
	rules     Rules
	messages  Messages
	sometimes []SometimesRule
	defaults  map[string]string
	input     Input
	errors    MessageBag
}

var _ Validable = (*Validator)(nil)

func NewValidator(rules Rules, messages Messages, sometimes ...SometimesRule) *Validator {
	if messages == nil {
		messages = Messages{}
	}
	return &Validator{
		validator: validator.New(),
		rules:     rules,
		messages:  messages,
		sometimes: sometimes,
		defaults:  make(map[string]string),
		errors:    MessageBag{},
	}
}

// Register adds custom predicates to the underlying engine.
func (v *Validator) Register(rules ...ValidationRule) {
	for _, validationRule := range rules {
		if validationRule.Rule != nil {
			validationRule.Rule(v.validator)
		}
		if validationRule.Message != "" {
			v.defaults[validationRule.Tag] = validationRule.Message
		}
	}
}

func (v *Validator) Sometimes(field, rule string, callback func(input Input) bool) {
	v.sometimes = append(v.sometimes, SometimesRule{Field: field, Rule: rule, Callback: callback})
}

func (v *Validator) With(input Input) Validable {
	v.input = input
	return v
}

// Passes validates the input. It returns false with a nil error when the input
// breaks a rule, in which case Errors holds the messages. A non nil error means
// the rules could not be evaluated.
func (v *Validator) Passes(ctx context.Context) (ok bool, err error) {
	v.errors = MessageBag{}

	defer func() {
		if r := recover(); r != nil {
			zap.S().Named("validator").Errorw("failed to evaluate rules", "error", r)
			v.errors = MessageBag{}
			ok, err = false, NewErrInvalidRule("failed to evaluate rules: %v", r)
		}
	}()

	input := normalize(v.input, v.rules)
	rules := v.compose(input)

	data := make(map[string]any, len(rules))
	engineRules := make(map[string]any, len(rules))
	for field, fieldRules := range rules {
		value := input[field]
		if value == "" {
			if fieldRules.required {
				v.errors.Add(field, v.message(field, "required", "", false))
			}
			continue
		}
		if len(fieldRules.tokens) == 0 {
			continue
		}
		data[field] = typed(value, fieldRules.numeric)
		engineRules[field] = fieldRules.tag()
	}

	ctx, run := newRun(ctx, input)

	for field, fieldErr := range v.validator.ValidateMapCtx(ctx, data, engineRules) {
		errs, isValidation := fieldErr.(validator.ValidationErrors)
		if !isValidation {
			return false, fmt.Errorf("failed to validate field %q: %v", field, fieldErr)
		}
		for _, e := range errs {
			v.errors.Add(field, v.message(field, e.Tag(), e.Param(), rules[field].numeric))
		}
	}

	if run.err != nil {
		v.errors = MessageBag{}
		return false, run.err
	}

	return v.errors.Len() == 0, nil
}

// Errors returns the messages of the last Passes call.
func (v *Validator) Errors() MessageBag {
	return v.errors
}
