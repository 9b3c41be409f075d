package validate

import "fmt"

// Validator validates a flat map of input values against chains of named
// rules. Builder methods stage rules into a pending chain; Validate runs the
// chain against one field and clears it. The zero value is not usable; use
// New.
type Validator struct {
	inputs   map[string]string
	registry map[string]rule
	pending  []string
	labels   map[string]string
	messages map[string]string
	errors   map[string]string
	order    []string
}

// New creates a Validator over the given field-to-value mapping. The mapping
// is captured as-is and treated as read-only for the Validator's lifetime; a
// nil mapping behaves as an empty one.
func New(inputs map[string]string) *Validator {
	if inputs == nil {
		inputs = make(map[string]string)
	}
	return &Validator{
		inputs:   inputs,
		registry: make(map[string]rule),
		labels:   make(map[string]string),
		messages: make(map[string]string),
		errors:   make(map[string]string),
	}
}

// Validate runs the pending rule chain against the named field in the order
// the rules were staged, stopping at the first failure and recording its
// formatted message for the field. The optional label is used in messages in
// place of a generated "The <field> field" phrase. The pending chain is
// cleared whether or not the field passes. A field absent from the inputs is
// validated as an empty value. A label set on an earlier Validate call for
// the same field is reused when no label is given.
func (v *Validator) Validate(field string, label ...string) bool {
	lbl, seen := v.labels[field]
	if !seen {
		lbl = "The " + field + " field"
	}
	if len(label) > 0 && label[0] != "" {
		lbl = label[0]
	}
	v.labels[field] = lbl

	chain := v.pending
	v.pending = nil

	value := v.inputs[field]
	for _, name := range chain {
		r, ok := v.registry[name]
		if !ok {
			continue
		}
		if !r.check(value) {
			v.fail(field, fmt.Sprintf(r.message, lbl))
			return false
		}
	}
	return true
}

// HasErrors reports whether any validated field has failed.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// GetError returns the message recorded for a field, or an empty string if
// the field never failed.
func (v *Validator) GetError(field string) string {
	return v.errors[field]
}

// ErrorMap returns a copy of the recorded errors keyed by field name.
func (v *Validator) ErrorMap() map[string]string {
	out := make(map[string]string, len(v.errors))
	for field, msg := range v.errors {
		out[field] = msg
	}
	return out
}

// ErrorList returns the recorded messages in the order the fields were
// validated.
func (v *Validator) ErrorList() []string {
	out := make([]string, 0, len(v.order))
	for _, field := range v.order {
		out = append(out, v.errors[field])
	}
	return out
}

// fail records a field's message. A repeat failure of the same field under a
// later chain replaces the stored message but keeps the field's position in
// the validation order.
func (v *Validator) fail(field, msg string) {
	if _, ok := v.errors[field]; !ok {
		v.order = append(v.order, field)
	}
	v.errors[field] = msg
}
