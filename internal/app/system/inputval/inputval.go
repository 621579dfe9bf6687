// Package inputval validates form input before any store call is made.
//
// Validate checks a struct against `validate` tags ("required",
// "max=N"), using the `label` tag for user-facing messages. It covers
// the required-field and length rules this app needs; anything fancier
// belongs in the handler.
//
// The money helpers implement the intake form's lenient numeric
// coercion: an empty field means "use the default", non-numeric text is
// a validation failure, never a silent zero.
package inputval

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Result collects validation failures in field order.
type Result struct {
	errs []string
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.errs) > 0 }

// First returns the first failure message, or "".
func (r Result) First() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0]
}

// All returns every failure message.
func (r Result) All() []string { return r.errs }

func (r *Result) add(msg string) { r.errs = append(r.errs, msg) }

// Validate checks the string fields of a struct against their
// `validate` tags. Supported rules: required, max=N.
func Validate(v any) Result {
	var res Result

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return res
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" || field.Type.Kind() != reflect.String {
			continue
		}

		label := field.Tag.Get("label")
		if label == "" {
			label = field.Name
		}
		val := rv.Field(i).String()

		for _, rule := range strings.Split(tag, ",") {
			switch {
			case rule == "required":
				if strings.TrimSpace(val) == "" {
					res.add(fmt.Sprintf("%s is required.", label))
				}
			case strings.HasPrefix(rule, "max="):
				n, err := strconv.Atoi(strings.TrimPrefix(rule, "max="))
				if err == nil && len(val) > n {
					res.add(fmt.Sprintf("%s must be at most %d characters.", label, n))
				}
			}
		}
	}
	return res
}

// ParseMoney parses a monetary form value. Empty input coerces to the
// zero default; non-numeric or negative input is rejected with a message
// naming the field.
func ParseMoney(raw, label string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", label)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s cannot be negative", label)
	}
	return v, nil
}

// ParseOptionalMoney is ParseMoney for nullable amounts: empty input
// coerces to absent (nil) rather than zero.
func ParseOptionalMoney(raw, label string) (*float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	v, err := ParseMoney(raw, label)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SplitTags turns a comma-separated tag field into a trimmed,
// empty-filtered list. Never returns nil.
func SplitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
