package validate

import "strings"

// OneOf stages a rule requiring the raw value to be a member of a fixed set
// resolved when the chain is built. Each argument may be a single choice or
// a comma-separated list of choices ("a,b,c"). Blank values pass.
func (v *Validator) OneOf(allowed ...string) *Validator {
	return v.OneOfMsg(allowed, "")
}

// OneOfMsg is OneOf with a message override.
func (v *Validator) OneOfMsg(allowed []string, message string) *Validator {
	choices := make([]string, 0, len(allowed))
	for _, entry := range allowed {
		for choice := range strings.SplitSeq(entry, ",") {
			choices = append(choices, strings.TrimSpace(choice))
		}
	}

	var override []string
	if message != "" {
		override = []string{message}
	}
	return v.register("oneof", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		for _, choice := range choices {
			if value == choice {
				return true
			}
		}
		return false
	}, v.buildMessage("oneof", strings.Join(choices, ", ")), override)
}

// Matches stages a rule requiring the value to equal another field's value
// as it stands when the chain is built. The snapshot means later changes to
// the referenced field do not affect the comparison. The label names the
// referenced field in the message. Blank values pass.
func (v *Validator) Matches(field, label string, message ...string) *Validator {
	snapshot := v.inputs[field]
	return v.register("matches", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		return value == snapshot
	}, v.buildMessage("matches", label), message)
}

// NotMatches stages the inverse of Matches: the value must differ from the
// referenced field's build-time snapshot. Blank values pass.
func (v *Validator) NotMatches(field, label string, message ...string) *Validator {
	snapshot := v.inputs[field]
	return v.register("notmatches", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		return value != snapshot
	}, v.buildMessage("notmatches", label), message)
}
