package response

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldErrors flattens an ozzo validation.Errors map into the
// {field, message} list surfaced to clients. Every violated field is
// reported, not just the first. Returns nil when err is not a
// validation error.
func FieldErrors(err error) []FieldError {
	var verrs validation.Errors
	ok := false
	if e, isMap := err.(validation.Errors); isMap {
		verrs = e
		ok = true
	}
	if !ok {
		return nil
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]FieldError, 0, len(verrs))
	for _, field := range fields {
		out = append(out, FieldError{
			Field:   field,
			Message: verrs[field].Error(),
		})
	}
	return out
}
