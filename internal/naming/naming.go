package naming

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidName is returned when an identifier collapses to nothing.
var ErrInvalidName = errors.New("invalid name")

// Transform maps a raw identifier to an accessor-name fragment.
//
// The scan removes each underscore it visits and upper-cases the rune right
// after it; that rune is consumed by the same step, so a second consecutive
// underscore is kept. The first rune of the result is always upper-cased.
// Empty input, or input that collapses to an empty result (e.g. "_"),
// yields ErrInvalidName.
func Transform(raw string) (string, error) {
	runes := []rune(raw)
	out := make([]rune, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		if !isSeparator(runes[i]) {
			out = append(out, runes[i])

			continue
		}

		if i+1 < len(runes) {
			i++
			out = append(out, unicode.ToUpper(runes[i]))
		}
	}

	if len(out) == 0 {
		return "", fmt.Errorf("%w: %q has no characters left after removing underscores", ErrInvalidName, raw)
	}

	out[0] = unicode.ToUpper(out[0])

	return string(out), nil
}

// AccessorName joins prefix, field fragment and postfix.
// With rename set the raw name goes through Transform first; otherwise it is
// used verbatim.
func AccessorName(prefix, raw, postfix string, rename bool) (string, error) {
	name := raw
	if rename {
		var err error

		name, err = Transform(raw)
		if err != nil {
			return "", err
		}
	}

	return prefix + name + postfix, nil
}

// isSeparator returns true for the rune the transform strips.
func isSeparator(r rune) bool {
	return r == '_'
}
