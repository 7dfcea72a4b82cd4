// Package validate turns untyped client payloads into typed inputs.
// Each function checks required fields in a fixed order and reports the first
// one that is missing or cannot be coerced as a *domain.ValidationError.
//
// Coercion is permissive: numbers may arrive as JSON numbers or
// numeric strings, and text fields accept any scalar. Optional fields that are
// absent (or null) stay nil so the services can apply their defaults.
package validate

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/pkordes/russia-map/backend/internal/domain"
)

// requirePresent returns a Missing error for the first absent field.
func requirePresent(in domain.RawInput, fields ...string) error {
	for _, f := range fields {
		if !in.Has(f) {
			return domain.Missing(f)
		}
	}
	return nil
}

func number(in domain.RawInput, field string) (float64, error) {
	f, err := cast.ToFloat64E(in[field])
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, domain.Malformed(field, "a finite number")
	}
	return f, nil
}

func integer(in domain.RawInput, field string) (int, error) {
	// JSON numbers decode as float64 and are truncated toward zero.
	if f, ok := in[field].(float64); ok {
		if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, domain.Malformed(field, "an integer")
		}
		return int(f), nil
	}
	// Strings are decimal only: "08" is 8 and "0x10" is rejected.
	if s, ok := in[field].(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, domain.Malformed(field, "an integer")
		}
		return n, nil
	}
	n, err := cast.ToIntE(in[field])
	if err != nil {
		return 0, domain.Malformed(field, "an integer")
	}
	return n, nil
}

func text(in domain.RawInput, field string) (string, error) {
	s, err := cast.ToStringE(in[field])
	if err != nil {
		return "", domain.Malformed(field, "text")
	}
	return s, nil
}

// optionalText returns nil when field is absent or null.
func optionalText(in domain.RawInput, field string) (*string, error) {
	if !in.Has(field) {
		return nil, nil
	}
	s, err := text(in, field)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// optionalInteger returns nil when field is absent or null.
func optionalInteger(in domain.RawInput, field string) (*int, error) {
	if !in.Has(field) {
		return nil, nil
	}
	n, err := integer(in, field)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
