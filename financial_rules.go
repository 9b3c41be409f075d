package validate

import "strings"

// CCNum stages a rule validating a credit card number with the Luhn
// checksum. Spaces are stripped first; the remaining digits must number
// between 13 and 19. Blank values pass.
func (v *Validator) CCNum(message ...string) *Validator {
	return v.register("ccnum", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}

		cleaned := strings.ReplaceAll(value, " ", "")
		if len(cleaned) < 13 || len(cleaned) > 19 {
			return false
		}
		for _, r := range cleaned {
			if r < '0' || r > '9' {
				return false
			}
		}

		// Luhn: double every second digit from the right, fold two-digit
		// products, and check the sum mod 10.
		sum := 0
		double := false
		for i := len(cleaned) - 1; i >= 0; i-- {
			digit := int(cleaned[i] - '0')
			if double {
				digit *= 2
				if digit > 9 {
					digit = digit/10 + digit%10
				}
			}
			sum += digit
			double = !double
		}
		return sum%10 == 0
	}, v.buildMessage("ccnum"), message)
}
