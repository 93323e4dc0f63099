package stack

import (
	"errors"
	"strings"
)

const baseDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var ErrInvalidBase = errors.New("[stack] base must be in [2, 36]")

// ConvertBase formats the decimal number in the base by pushing the
// remainders and popping them in reverse order.
func ConvertBase(decNumber uint64, base int) (string, error) {
	if base < 2 || base > len(baseDigits) {
		return "", ErrInvalidBase
	}
	if decNumber == 0 {
		return "0", nil
	}

	s := NewArrayStack[byte]()
	b := uint64(base)
	for decNumber > 0 {
		s.Push(baseDigits[decNumber%b])
		decNumber /= b
	}

	var builder strings.Builder
	builder.Grow(int(s.Len()))
	for d, ok := s.Pop(); ok; d, ok = s.Pop() {
		builder.WriteByte(d)
	}
	return builder.String(), nil
}
