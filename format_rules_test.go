package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formkit/validate"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"",
		"bob@example.com",
		"first.last@sub.example.co.uk",
		"user+tag@example.io",
	}
	for _, value := range valid {
		t.Run("passes "+value, func(t *testing.T) {
			v := validate.New(map[string]string{"email": value})
			assert.True(t, v.Email().Validate("email", "Email"))
		})
	}

	invalid := []string{
		"plainaddress",
		"@example.com",
		"bob@localhost",
		"bob@.example.com",
		"bob@example.com.",
		"Bob <bob@example.com>",
	}
	for _, value := range invalid {
		t.Run("fails "+value, func(t *testing.T) {
			v := validate.New(map[string]string{"email": value})
			assert.False(t, v.Email().Validate("email", "Email"))
			assert.Equal(t, "Email must be a valid email address.", v.GetError("email"))
		})
	}
}

func TestIP(t *testing.T) {
	valid := []string{"", "192.168.1.1", "::1", "2001:db8::8a2e:370:7334"}
	for _, value := range valid {
		t.Run("passes "+value, func(t *testing.T) {
			v := validate.New(map[string]string{"ip": value})
			assert.True(t, v.IP().Validate("ip", "IP"))
		})
	}

	invalid := []string{"256.1.1.1", "192.168.1", "not-an-ip"}
	for _, value := range invalid {
		t.Run("fails "+value, func(t *testing.T) {
			v := validate.New(map[string]string{"ip": value})
			assert.False(t, v.IP().Validate("ip", "IP"))
		})
	}
}

func TestURL(t *testing.T) {
	valid := []string{"", "https://example.com", "http://example.com/path?q=1", "ftp://files.example.com"}
	for _, value := range valid {
		t.Run("passes "+value, func(t *testing.T) {
			v := validate.New(map[string]string{"url": value})
			assert.True(t, v.URL().Validate("url", "URL"))
		})
	}

	invalid := []string{"example.com", "/relative/path", "://missing-scheme"}
	for _, value := range invalid {
		t.Run("fails "+value, func(t *testing.T) {
			v := validate.New(map[string]string{"url": value})
			assert.False(t, v.URL().Validate("url", "URL"))
		})
	}
}

func TestUUID(t *testing.T) {
	valid := []string{"", "550e8400-e29b-41d4-a716-446655440000", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}
	for _, value := range valid {
		t.Run("passes "+value, func(t *testing.T) {
			v := validate.New(map[string]string{"id": value})
			assert.True(t, v.UUID().Validate("id", "ID"))
		})
	}

	invalid := []string{
		"550e8400-e29b-41d4-a716",
		"550e8400e29b41d4a716446655440000",
		"550e8400-e29b-41d4-a716-44665544000g",
	}
	for _, value := range invalid {
		t.Run("fails "+value, func(t *testing.T) {
			v := validate.New(map[string]string{"id": value})
			assert.False(t, v.UUID().Validate("id", "ID"))
			assert.Equal(t, "ID must be a valid UUID.", v.GetError("id"))
		})
	}
}

func TestAlpha(t *testing.T) {
	t.Run("passes letters and empty", func(t *testing.T) {
		for _, value := range []string{"", "Hello", "abc"} {
			v := validate.New(map[string]string{"name": value})
			assert.True(t, v.Alpha().Validate("name", "Name"), value)
		}
	})

	t.Run("fails digits and punctuation", func(t *testing.T) {
		for _, value := range []string{"abc1", "a b", "a-b"} {
			v := validate.New(map[string]string{"name": value})
			assert.False(t, v.Alpha().Validate("name", "Name"), value)
		}
	})
}

func TestAlphanumeric(t *testing.T) {
	t.Run("passes letters and digits", func(t *testing.T) {
		for _, value := range []string{"", "abc123", "ABC"} {
			v := validate.New(map[string]string{"slug": value})
			assert.True(t, v.Alphanumeric().Validate("slug", "Slug"), value)
		}
	})

	t.Run("fails separators", func(t *testing.T) {
		for _, value := range []string{"abc-123", "a b"} {
			v := validate.New(map[string]string{"slug": value})
			assert.False(t, v.Alphanumeric().Validate("slug", "Slug"), value)
		}
	})
}
