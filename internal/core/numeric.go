package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput reports a value that cannot take part in game arithmetic:
	// unparsable text, a zero divisor, NaN or infinity.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfBounds reports a grid or board access outside its fixed dimensions.
	ErrOutOfBounds = errors.New("out of bounds")
)

// ParseInt parses trimmed decimal text.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("core: parse %q: %w", s, ErrInvalidInput)
	}
	return n, nil
}

// Ratio divides a by b, rejecting a zero divisor and non-finite results.
func Ratio(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("core: %g / 0: %w", a, ErrInvalidInput)
	}
	return Finite(a / b)
}

// Finite returns x unchanged, or ErrInvalidInput when x is NaN or infinite.
func Finite(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("core: non-finite value %v: %w", x, ErrInvalidInput)
	}
	return x, nil
}

// SaturatingAdd returns a+b clamped to the int64 range instead of wrapping.
func SaturatingAdd(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}
