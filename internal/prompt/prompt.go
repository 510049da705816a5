// Package prompt asks the operator which fields to wrap.
package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"reflection-generator/internal/descriptor"
)

// ErrNothingSelected is returned when the operator confirms an empty selection.
var ErrNothingSelected = errors.New("no fields selected")

// SelectFields shows a multi-select of fields and returns the chosen ones in
// listing order.
func SelectFields(typeName string, fields []descriptor.Field) ([]descriptor.Field, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s has no fields to offer", ErrNothingSelected, typeName)
	}

	var chosen []int

	form := createSelectForm(typeName, fields, &chosen)
	if err := form.Run(); err != nil {
		return nil, err
	}

	return pick(fields, chosen)
}

func createSelectForm(typeName string, fields []descriptor.Field, chosen *[]int) *huh.Form {
	options := make([]huh.Option[int], 0, len(fields))
	for i, f := range fields {
		options = append(options, huh.NewOption(f.String(), i))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Fields of " + typeName).
				Description("Select the fields to generate accessors for").
				Options(options...).
				Value(chosen).
				Validate(func(s []int) error {
					if len(s) == 0 {
						return ErrNothingSelected
					}

					return nil
				}),
		),
	)
}

// pick maps selected option indexes back to fields, keeping listing order.
func pick(fields []descriptor.Field, chosen []int) ([]descriptor.Field, error) {
	if len(chosen) == 0 {
		return nil, ErrNothingSelected
	}

	selected := make(map[int]bool, len(chosen))
	for _, i := range chosen {
		if i < 0 || i >= len(fields) {
			return nil, fmt.Errorf("selection %d out of range", i)
		}

		selected[i] = true
	}

	out := make([]descriptor.Field, 0, len(selected))

	for i, f := range fields {
		if selected[i] {
			out = append(out, f)
		}
	}

	return out, nil
}
