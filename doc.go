// Package validate provides a fluent, fail-fast validator for flat
// field-to-value form data, the server-side counterpart of client-side form
// validation.
//
// A Validator is constructed around a map of field names to raw string
// values. Callers stage an ordered chain of named rules with fluent builder
// methods, then run the chain against one field with Validate. The first
// failing rule records a single human-readable message for that field and
// stops the chain; the chain is cleared after every Validate call so the
// Validator is immediately ready for the next field.
//
// # Architecture
//
// Rule families are grouped per file (string_rules.go, numeric_rules.go,
// date_rules.go, etc.). Every builder method constructs a rule value with
// its parameters bound at call time, registers it once under its canonical
// name, and stages the name into the pending chain. Bound arguments are
// interpolated into the rule's message template when the chain is built,
// not when the error is formatted.
//
// Core building blocks:
//   - Validator – input store, rule registry, pending chain, error store
//   - rule      – a bound check function plus its message template
//   - Callback  – ad-hoc rules from a predicate func, a regexp, or a literal
//
// # Usage
//
//	v := validate.New(map[string]string{
//	    "email": "bob@example.com",
//	    "age":   "17",
//	})
//	v.Required().Email().Validate("email", "Email address")
//	v.Required().Integer().Min(18, true).Validate("age", "Age")
//	if v.HasErrors() {
//	    for _, msg := range v.ErrorList() {
//	        // render msg
//	    }
//	}
//
// # Error Handling
//
// Rule failures are never returned as errors; they are stored messages
// retrievable with GetError, ErrorMap, and ErrorList. A field holds at most
// one message, the first failure of its most recent chain. Registering a
// malformed Callback rule panics, since that indicates a programming error
// in the chain itself rather than bad input.
//
// # Concurrency
//
// A Validator carries transient chain state between builder calls and
// Validate, so a single instance must not be shared across goroutines.
// Instances are cheap; give each concurrent unit its own.
package validate
