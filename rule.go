package validate

// predicate decides pass or fail for a field's raw value. All rule
// parameters are bound into the predicate when the chain is built.
type predicate func(value string) bool

// rule pairs a bound predicate with its message template. The template holds
// exactly one %s placeholder for the field label; any rule parameters were
// interpolated when the rule was registered.
type rule struct {
	check   predicate
	message string
}

// register stores a rule under its canonical name and stages the name into
// the pending chain. Registration is write-once: a name seen before keeps
// its original predicate and message, and only its pending membership is
// refreshed. The override, when present, replaces the default template at
// first registration.
func (v *Validator) register(name string, check predicate, message string, override []string) *Validator {
	if _, ok := v.registry[name]; !ok {
		if len(override) > 0 && override[0] != "" {
			message = override[0]
		}
		v.registry[name] = rule{check: check, message: message}
	}
	v.stage(name)
	return v
}

// stage appends a rule name to the pending chain unless it is already there.
func (v *Validator) stage(name string) {
	for _, staged := range v.pending {
		if staged == name {
			return
		}
	}
	v.pending = append(v.pending, name)
}
