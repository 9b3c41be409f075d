package validate

import (
	"strings"
	"unicode/utf8"
)

// Required stages a rule that fails when the field's trimmed value is empty.
// Every other built-in rule passes an empty value through, so Required is
// the only way to enforce presence.
func (v *Validator) Required(message ...string) *Validator {
	return v.register("required", func(value string) bool {
		return strings.TrimSpace(value) != ""
	}, v.buildMessage("required"), message)
}

// MinLength stages a rule requiring the trimmed value to be at least min
// characters long. Blank values pass.
func (v *Validator) MinLength(min int, message ...string) *Validator {
	return v.register("minlength", func(value string) bool {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return true
		}
		return utf8.RuneCountInString(trimmed) >= min
	}, v.buildMessage("minlength", min), message)
}

// MaxLength stages a rule requiring the trimmed value to be at most max
// characters long. Blank values pass.
func (v *Validator) MaxLength(max int, message ...string) *Validator {
	return v.register("maxlength", func(value string) bool {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return true
		}
		return utf8.RuneCountInString(trimmed) <= max
	}, v.buildMessage("maxlength", max), message)
}

// Length stages a rule requiring the trimmed value to be exactly n
// characters long. Blank values pass.
func (v *Validator) Length(n int, message ...string) *Validator {
	return v.register("length", func(value string) bool {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return true
		}
		return utf8.RuneCountInString(trimmed) == n
	}, v.buildMessage("length", n), message)
}
