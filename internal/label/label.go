// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package label generates exhibit label sequences. Labels are either
// numeric ("1", "2", ...) or bijective base-26 alphabetic ("A" ... "Z",
// "AA", "AB", ...); sequences are strictly monotonic with no gaps.
package label

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidLabel reports a seed that is neither alphabetic nor numeric.
var ErrInvalidLabel = errors.New("invalid label")

var (
	alphaPattern   = regexp.MustCompile(`^[A-Za-z]+$`)
	numericPattern = regexp.MustCompile(`^[0-9]+$`)
)

const alphabetSize = 26

// Valid reports whether seed is a well-formed label.
func Valid(seed string) bool {
	return alphaPattern.MatchString(seed) || numericPattern.MatchString(seed)
}

// Next returns the label one step after label. Numeric labels increment as
// integers. Alphabetic labels increment as bijective base-26 numerals, so
// "Z" carries to "AA" and "AZ" to "BA". Case is preserved from the seed:
// an all-lowercase seed yields a lowercase successor.
func Next(label string) (string, error) {
	switch {
	case numericPattern.MatchString(label):
		n, err := strconv.Atoi(label)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrInvalidLabel, label, err)
		}
		return strconv.Itoa(n + 1), nil

	case alphaPattern.MatchString(label):
		next := fromDecimal(toDecimal(label) + 1)
		if label == strings.ToLower(label) {
			return strings.ToLower(next), nil
		}
		return next, nil

	default:
		return "", fmt.Errorf("%w: %q (want letters or digits)", ErrInvalidLabel, label)
	}
}

// toDecimal converts a bijective base-26 numeral to its integer value,
// with A=1 and Z=26.
func toDecimal(s string) int {
	n := 0
	for _, c := range strings.ToUpper(s) {
		n = n*alphabetSize + int(c-'A') + 1
	}
	return n
}

// fromDecimal converts a positive integer to its bijective base-26
// numeral. Digits come out least-significant first; each step works on
// n-1 because the numeral system has no zero digit.
func fromDecimal(n int) string {
	var digits []byte
	for n > 0 {
		n--
		digits = append(digits, byte('A'+n%alphabetSize))
		n /= alphabetSize
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
