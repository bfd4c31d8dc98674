package domain

import (
	"math"
	"strconv"
	"strings"
)

// Default mix ratios by volume.
const (
	StructuralConcreteRatio = "1:2:4"
	FoundationConcreteRatio = "1:3:6"
	MortarRatio             = "1:6"
	PlasterRatio            = "1:6"
)

// Largest accepted single part of a mix ratio.
const MaxRatioPart = 1000

// MixRatio holds the relative volume parts of a mix, e.g. cement:sand:aggregate.
type MixRatio struct {
	Parts []int
}

// ParseMixRatio parses a colon-delimited ratio such as "1:2:4".
// At least two parts are required and every part must be an integer in 1..MaxRatioPart.
func ParseMixRatio(s string) (MixRatio, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) < 2 {
		return MixRatio{}, &ValidationError{Field: "ratio", Value: s, Err: ErrInvalidRatio}
	}

	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		p, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return MixRatio{}, &ValidationError{Field: "ratio", Value: s, Err: ErrInvalidRatio}
		}
		parts = append(parts, p)
	}

	r := MixRatio{Parts: parts}
	if err := r.Validate(); err != nil {
		return MixRatio{}, &ValidationError{Field: "ratio", Value: s, Err: ErrInvalidRatio}
	}
	return r, nil
}

// Validate rejects ratios with fewer than two parts, parts outside
// 1..MaxRatioPart, or a total that does not fit in an int.
func (r MixRatio) Validate() error {
	if len(r.Parts) < 2 {
		return &ValidationError{Field: "ratio", Value: r.String(), Err: ErrInvalidRatio}
	}
	total := 0
	for _, p := range r.Parts {
		if p <= 0 || p > MaxRatioPart || total > math.MaxInt-p {
			return &ValidationError{Field: "ratio", Value: r.String(), Err: ErrInvalidRatio}
		}
		total += p
	}
	return nil
}

// MustParseMixRatio is ParseMixRatio for package-level constants; it panics on error.
func MustParseMixRatio(s string) MixRatio {
	r, err := ParseMixRatio(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Total returns the sum of all parts.
func (r MixRatio) Total() int {
	total := 0
	for _, p := range r.Parts {
		total += p
	}
	return total
}

func (r MixRatio) String() string {
	s := make([]string, len(r.Parts))
	for i, p := range r.Parts {
		s[i] = strconv.Itoa(p)
	}
	return strings.Join(s, ":")
}
