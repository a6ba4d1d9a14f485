package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Input bounds applied to every sale and target value.
const (
	MinValue = 0.0
	MaxValue = 9999.99
)

// ValueRange is an inclusive [Min, Max] interval.
type ValueRange struct {
	Min float64
	Max float64
}

// DefaultValueRange returns the standard [0, 9999.99] bounds.
func DefaultValueRange() ValueRange {
	return ValueRange{Min: MinValue, Max: MaxValue}
}

// Check returns ErrValueOutOfRange when v falls outside the range.
func (r ValueRange) Check(field string, v float64) error {
	if math.IsNaN(v) || v < r.Min || v > r.Max {
		return fmt.Errorf("%w: %s must be between %.2f and %.2f, got %v", ErrValueOutOfRange, field, r.Min, r.Max, v)
	}
	return nil
}

// RequireText trims input and rejects it when nothing is left.
func RequireText(input, field string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyInput, field)
	}
	return s, nil
}

// ParseValue parses user input as a number inside r.
func (r ValueRange) ParseValue(input, field string) (float64, error) {
	s, err := RequireText(input, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrNotANumber, field, input)
	}
	if err := r.Check(field, v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseIndex parses a 1-based month number typed by a user into a 0-based index.
func ParseIndex(input, field string) (int, error) {
	s, err := RequireText(input, field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrNotANumber, field, input)
	}
	return n - 1, nil
}
