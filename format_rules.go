package validate

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Email stages a rule requiring a syntactically valid email address for
// typical web use: an RFC 5322 address with a non-empty local part and a
// dotted domain. Blank values pass.
func (v *Validator) Email(message ...string) *Validator {
	return v.register("email", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}

		addr, err := mail.ParseAddress(value)
		if err != nil {
			return false
		}

		// Reject display-name forms like "Bob <bob@example.com>".
		if addr.Address != value {
			return false
		}

		parts := strings.Split(addr.Address, "@")
		if len(parts) != 2 || parts[0] == "" {
			return false
		}

		domain := parts[1]
		if !strings.Contains(domain, ".") {
			return false
		}
		for part := range strings.SplitSeq(domain, ".") {
			if part == "" {
				return false
			}
		}

		return true
	}, v.buildMessage("email"), message)
}

// IP stages a rule requiring a valid IPv4 or IPv6 address. Blank values pass.
func (v *Validator) IP(message ...string) *Validator {
	return v.register("ip", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		return net.ParseIP(value) != nil
	}, v.buildMessage("ip"), message)
}

// URL stages a rule requiring an absolute URL with a scheme and host. Blank
// values pass.
func (v *Validator) URL(message ...string) *Validator {
	return v.register("url", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		u, err := url.ParseRequestURI(value)
		if err != nil {
			return false
		}
		return u.Scheme != "" && u.Host != ""
	}, v.buildMessage("url"), message)
}

// UUID stages a rule requiring a canonical 36-character UUID. Blank values
// pass.
func (v *Validator) UUID(message ...string) *Validator {
	return v.register("uuid", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}

		// Fast rejection: check length and hyphen positions before parsing.
		if len(value) != 36 {
			return false
		}
		if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
			return false
		}

		_, err := uuid.Parse(value)
		return err == nil
	}, v.buildMessage("uuid"), message)
}

// Alpha stages a rule allowing only ASCII letters. Blank values pass.
func (v *Validator) Alpha(message ...string) *Validator {
	return v.register("alpha", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		return alphaRegex.MatchString(value)
	}, v.buildMessage("alpha"), message)
}

// Alphanumeric stages a rule allowing only ASCII letters and digits. Blank
// values pass.
func (v *Validator) Alphanumeric(message ...string) *Validator {
	return v.register("alphanumeric", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		return alphanumericRegex.MatchString(value)
	}, v.buildMessage("alphanumeric"), message)
}
