package validator

import (
	"strings"
)

const genericMessage = "The :attribute is invalid."

var defaultMessages = map[string]string{
	"required": "The :attribute field is required.",
	"email":    "The :attribute must be a valid email address.",
	"numeric":  "The :attribute must be a number.",
	"number":   "The :attribute must be a number.",
	"boolean":  "The :attribute field must be true or false.",
	"alpha":    "The :attribute may only contain letters.",
	"alphanum": "The :attribute may only contain letters and numbers.",
	"oneof":    "The selected :attribute is invalid.",
	"datetime": "The :attribute is not a valid date.",
	"url":      "The :attribute format is invalid.",
}

// size rules read differently for numbers and strings
var sizeMessages = map[string][2]string{
	"len": {"The :attribute must be :param characters.", "The :attribute must be :param."},
	"min": {"The :attribute must be at least :param characters.", "The :attribute must be at least :param."},
	"gte": {"The :attribute must be at least :param characters.", "The :attribute must be at least :param."},
	"max": {"The :attribute may not be greater than :param characters.", "The :attribute may not be greater than :param."},
	"lte": {"The :attribute may not be greater than :param characters.", "The :attribute may not be greater than :param."},
	"gt":  {"The :attribute must be more than :param characters.", "The :attribute must be greater than :param."},
	"lt":  {"The :attribute must be less than :param characters.", "The :attribute must be less than :param."},
}

func (v *Validator) message(field, tag, param string, numeric bool) string {
	return format(v.lookup(field, tag, numeric), field, param)
}

func (v *Validator) lookup(field, tag string, numeric bool) string {
	if msg, found := v.messages[field+"."+tag]; found {
		return msg
	}
	if msg, found := v.defaults[tag]; found {
		return msg
	}
	if msg, found := defaultMessages[tag]; found {
		return msg
	}
	if msgs, found := sizeMessages[tag]; found {
		if numeric {
			return msgs[1]
		}
		return msgs[0]
	}
	return genericMessage
}

func format(msg, field, param string) string {
	return strings.NewReplacer(
		":attribute", Humanize(field),
		":param", param,
	).Replace(msg)
}

// Humanize turns a field name into the words used in messages.
func Humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
