package validate

import (
	"strconv"
	"strings"
)

// Float stages a rule requiring the value to parse as a floating-point
// number. Blank values pass.
func (v *Validator) Float(message ...string) *Validator {
	return v.register("float", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		_, err := strconv.ParseFloat(value, 64)
		return err == nil
	}, v.buildMessage("float"), message)
}

// Integer stages a rule requiring the value to parse as a base-10 integer.
// Blank values pass.
func (v *Validator) Integer(message ...string) *Validator {
	return v.register("integer", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		_, err := strconv.ParseInt(value, 10, 64)
		return err == nil
	}, v.buildMessage("integer"), message)
}

// Digits stages a rule requiring the value to consist solely of decimal
// digits. Blank values pass.
func (v *Validator) Digits(message ...string) *Validator {
	return v.register("digits", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		for _, r := range value {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}, v.buildMessage("digits"), message)
}

// Min stages a rule comparing the value numerically against a lower bound:
// value >= bound when inclusive, value > bound otherwise. Blank values pass;
// non-numeric values fail.
func (v *Validator) Min(bound float64, inclusive bool, message ...string) *Validator {
	key := "min"
	if !inclusive {
		key = "min_exclusive"
	}
	return v.register("min", minCheck(bound, inclusive), v.buildMessage(key, bound), message)
}

// Max stages a rule comparing the value numerically against an upper bound:
// value <= bound when inclusive, value < bound otherwise. Blank values pass;
// non-numeric values fail.
func (v *Validator) Max(bound float64, inclusive bool, message ...string) *Validator {
	key := "max"
	if !inclusive {
		key = "max_exclusive"
	}
	return v.register("max", maxCheck(bound, inclusive), v.buildMessage(key, bound), message)
}

// Between stages the min and max rules against a single shared message, so a
// value outside either bound reports the same combined text. It is sugar over
// Min and Max, and shares their registry entries: a min or max rule
// registered earlier on this Validator keeps its bounds and message.
func (v *Validator) Between(min, max float64, inclusive bool, message ...string) *Validator {
	shared := v.buildMessage("between", min, max)
	v.register("min", minCheck(min, inclusive), shared, message)
	v.register("max", maxCheck(max, inclusive), shared, message)
	return v
}

func minCheck(bound float64, inclusive bool) predicate {
	return func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		if inclusive {
			return n >= bound
		}
		return n > bound
	}
}

func maxCheck(bound float64, inclusive bool) predicate {
	return func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		if inclusive {
			return n <= bound
		}
		return n < bound
	}
}
