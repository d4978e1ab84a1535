package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory is the multipart memory limit.
const DefaultMaxMemory = 10 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data bodies
// into fields tagged `form:"name"`. Untagged fields bind by lowercase field
// name; `form:"-"` skips a field. Other content types get ErrNotApplicable.
//
// Supported field types are string, signed and unsigned integers, floats,
// bool (also "on", "yes"), pointers to those for optional values, and slices
// for repeated or comma-separated values.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		var values map[string][]string

		switch mediaType(r) {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value
		default:
			return ErrNotApplicable
		}

		if err := bindValues(v, "form", values); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		sanitize(v)
		return nil
	}
}
