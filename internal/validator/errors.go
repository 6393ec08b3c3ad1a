package validator

import (
	"fmt"
	"sort"
)

type ErrInvalidRule struct {
	error
}

func NewErrInvalidRule(format string, args ...any) *ErrInvalidRule {
	return &ErrInvalidRule{fmt.Errorf(format, args...)}
}

// MessageBag holds the validation messages of each failed field.
type MessageBag map[string][]string

func (m MessageBag) Add(field, message string) {
	m[field] = append(m[field], message)
}

func (m MessageBag) Has(field string) bool {
	return len(m[field]) > 0
}

// First returns the first message of field, or an empty string.
func (m MessageBag) First(field string) string {
	if msgs := m[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// All returns every message, ordered by field name.
func (m MessageBag) All() []string {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	all := make([]string, 0, len(fields))
	for _, field := range fields {
		all = append(all, m[field]...)
	}
	return all
}

func (m MessageBag) Len() int {
	n := 0
	for _, msgs := range m {
		n += len(msgs)
	}
	return n
}
