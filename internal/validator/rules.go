package validator

import (
	"context"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	requiredTag  = "required"
	omitemptyTag = "omitempty"
	numericTag   = "numeric"
)

// ValidationRule registers a custom predicate under Tag. Message is the default
// message of the predicate, with the same placeholders as Messages.
type ValidationRule struct {
	Tag     string
	Message string
	Rule    func(v *validator.Validate)
}

// NewValidationRule builds the rule registering fn under tag.
func NewValidationRule(tag, message string, fn validator.FuncCtx) ValidationRule {
	return ValidationRule{
		Tag:     tag,
		Message: message,
		Rule:    registerFn(tag, fn),
	}
}

func registerFn(tag string, fn validator.FuncCtx) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidationCtx(tag, fn)
	}
}

type fieldRules struct {
	required bool
	numeric  bool
	tokens   []string
}

func (f fieldRules) tag() string {
	return strings.Join(f.tokens, ",")
}

// compose merges the rule table with the sometimes rules that apply to input.
// required is checked before the engine runs, so it is pulled out of the tokens
// together with any omitempty.
func (v *Validator) compose(input Input) map[string]fieldRules {
	tokens := make(map[string][]string, len(v.rules))
	for field, fieldTokens := range v.rules {
		tokens[field] = slices.Clone(fieldTokens)
	}
	for _, s := range v.sometimes {
		if s.Callback != nil && s.Callback(input) {
			tokens[s.Field] = append(tokens[s.Field], s.Rule)
		}
	}

	composed := make(map[string]fieldRules, len(tokens))
	for field, fieldTokens := range tokens {
		r := fieldRules{tokens: make([]string, 0, len(fieldTokens))}
		for _, token := range fieldTokens {
			token = strings.TrimSpace(token)
			switch token {
			case "", omitemptyTag:
				continue
			case requiredTag:
				r.required = true
				continue
			case numericTag:
				r.numeric = true
			}
			r.tokens = append(r.tokens, token)
		}
		composed[field] = r
	}
	return composed
}

func splitToken(token string) (string, string) {
	name, param, _ := strings.Cut(token, "=")
	return name, param
}

type runKey struct{}

type run struct {
	input Input
	err   error
}

func newRun(ctx context.Context, input Input) (context.Context, *run) {
	r := &run{input: input}
	return context.WithValue(ctx, runKey{}, r), r
}

// InputFromContext returns the normalized input being validated. Predicates use
// it to read sibling fields.
func InputFromContext(ctx context.Context) Input {
	if r, ok := ctx.Value(runKey{}).(*run); ok {
		return r.input
	}
	return Input{}
}

// Abort makes the running Passes call return err. Predicates use it when a
// collaborator they depend on fails, since the engine only accepts a bool.
func Abort(ctx context.Context, err error) {
	if r, ok := ctx.Value(runKey{}).(*run); ok && r.err == nil {
		r.err = err
	}
}
