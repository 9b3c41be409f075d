package validate

import (
	"errors"
	"net/http"
	"net/url"
)

// FromForm flattens submitted form values into the field-to-value mapping a
// Validator consumes, keeping the first value of each multi-valued field.
func FromForm(values url.Values) map[string]string {
	inputs := make(map[string]string, len(values))
	for field, vals := range values {
		if len(vals) > 0 {
			inputs[field] = vals[0]
		}
	}
	return inputs
}

// FromRequest parses the request's query string and body form data and
// flattens them with FromForm. Use it to feed New from an incoming request:
//
//	inputs, err := validate.FromRequest(r)
//	if err != nil { ... }
//	v := validate.New(inputs)
func FromRequest(r *http.Request) (map[string]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, errors.Join(ErrMalformedForm, err)
	}
	return FromForm(r.Form), nil
}
