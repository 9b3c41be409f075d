package validate

import (
	"fmt"
	"regexp"
)

// Callback stages an ad-hoc rule under a caller-supplied name. The rule
// argument is classified once, at registration:
//
//  1. a func(string) bool is used directly as the predicate;
//  2. a string that compiles as a regular expression becomes a pattern
//     match against the value;
//  3. any other string becomes an exact-equality check.
//
// Note the hazard in mode 2: a literal comparison string that happens to be
// a valid regular expression is treated as a pattern, not a literal. Pass a
// func(string) bool when exact-match semantics must hold for such strings.
//
// Any other argument type is a malformed chain and panics.
func (v *Validator) Callback(name string, fn any, message ...string) *Validator {
	return v.register(name, classify(name, fn), v.buildMessage(name), message)
}

// classify resolves the callback's dispatch mode into a plain predicate.
func classify(name string, fn any) predicate {
	switch f := fn.(type) {
	case func(string) bool:
		return f
	case string:
		if re, err := regexp.Compile(f); err == nil {
			return re.MatchString
		}
		return func(value string) bool {
			return value == f
		}
	default:
		panic(fmt.Sprintf("validate: callback rule %q: want func(string) bool or string, got %T", name, fn))
	}
}
