package validate

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// genericMessage is the fallback for rules with no default template and no
// per-call override.
const genericMessage = "%s has an error."

// defaultMessages maps rule names to message templates. The first verb is
// always the field label; the remaining verbs are the rule's bound
// parameters, filled in when the chain is built.
var defaultMessages = map[string]string{
	"required":      "%s is required.",
	"email":         "%s must be a valid email address.",
	"float":         "%s must be a number.",
	"integer":       "%s must be an integer.",
	"digits":        "%s must contain only digits.",
	"min":           "%s must be at least %v.",
	"min_exclusive": "%s must be greater than %v.",
	"max":           "%s must be at most %v.",
	"max_exclusive": "%s must be less than %v.",
	"between":       "%s must be between %v and %v.",
	"minlength":     "%s must be at least %d characters long.",
	"maxlength":     "%s must be at most %d characters long.",
	"length":        "%s must be exactly %d characters long.",
	"matches":       "%s must match %s.",
	"notmatches":    "%s must not match %s.",
	"ip":            "%s must be a valid IP address.",
	"url":           "%s must be a valid URL.",
	"uuid":          "%s must be a valid UUID.",
	"alpha":         "%s may only contain letters.",
	"alphanumeric":  "%s may only contain letters and numbers.",
	"date":          "%s must be a valid date.",
	"mindate":       "%s must not be before %s.",
	"maxdate":       "%s must not be after %s.",
	"oneof":         "%s must be one of: %s.",
	"ccnum":         "%s must be a valid credit card number.",
}

// template resolves the message template for a rule name: an instance
// override first, then the default table, then the generic fallback.
func (v *Validator) template(name string) string {
	if tpl, ok := v.messages[name]; ok {
		return tpl
	}
	if tpl, ok := defaultMessages[name]; ok {
		return tpl
	}
	return genericMessage
}

// buildMessage produces a rule's final label-only template by interpolating
// the bound arguments into the resolved template, keeping the leading label
// placeholder intact. Rules without parameters use the template verbatim.
func (v *Validator) buildMessage(name string, args ...any) string {
	tpl := v.template(name)
	if len(args) == 0 {
		return tpl
	}
	return fmt.Sprintf(tpl, append([]any{"%s"}, args...)...)
}

// SetMessage replaces the default template for a rule on this Validator.
// The template follows the same contract as the defaults: the first verb is
// the field label. It affects rules registered after the call; already
// registered rules keep the template they were built with.
func (v *Validator) SetMessage(name, template string) *Validator {
	v.messages[name] = template
	return v
}

// LoadMessages merges a YAML document of rule-name to template pairs into
// this Validator's message overrides:
//
//	required: "%s cannot be left blank."
//	email: "%s does not look like an email address."
func (v *Validator) LoadMessages(data []byte) error {
	var catalog map[string]string
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return errors.Join(ErrInvalidMessageCatalog, err)
	}
	for name, tpl := range catalog {
		if tpl == "" {
			return fmt.Errorf("%w: empty template for rule %q", ErrInvalidMessageCatalog, name)
		}
		v.messages[name] = tpl
	}
	return nil
}
