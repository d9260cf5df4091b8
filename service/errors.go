package service

import (
	"strings"

	"quantor/domain"
)

// InvalidInputError lists the form fields that were missing, non-numeric or
// not strictly positive, or whose combination overflows the formulas.
// Message is the notification shown to the user.
type InvalidInputError struct {
	Fields  []domain.Field
	Message string
}

func (e *InvalidInputError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return "invalid input: " + strings.Join(names, ", ")
}
