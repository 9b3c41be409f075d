package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formkit/validate"
)

func TestOneOf(t *testing.T) {
	t.Run("accepts a member of a comma-separated set", func(t *testing.T) {
		v := validate.New(map[string]string{"plan": "b"})
		assert.True(t, v.OneOf("a,b,c").Validate("plan", "Plan"))
	})

	t.Run("rejects a non-member", func(t *testing.T) {
		v := validate.New(map[string]string{"plan": "d"})
		assert.False(t, v.OneOf("a,b,c").Validate("plan", "Plan"))
		assert.Equal(t, "Plan must be one of: a, b, c.", v.GetError("plan"))
	})

	t.Run("accepts a member of a literal set", func(t *testing.T) {
		v := validate.New(map[string]string{"plan": "pro"})
		assert.True(t, v.OneOf("free", "pro", "team").Validate("plan", "Plan"))
	})

	t.Run("trims whitespace around comma-separated choices", func(t *testing.T) {
		v := validate.New(map[string]string{"plan": "b"})
		assert.True(t, v.OneOf("a, b, c").Validate("plan", "Plan"))
	})

	t.Run("passes empty value", func(t *testing.T) {
		v := validate.New(map[string]string{"plan": ""})
		assert.True(t, v.OneOf("a,b,c").Validate("plan", "Plan"))
	})

	t.Run("message override", func(t *testing.T) {
		v := validate.New(map[string]string{"plan": "x"})
		v.OneOfMsg([]string{"a,b,c"}, "%s is not a known plan.").Validate("plan", "Plan")
		assert.Equal(t, "Plan is not a known plan.", v.GetError("plan"))
	})
}

func TestMatches(t *testing.T) {
	t.Run("passes when fields agree", func(t *testing.T) {
		v := validate.New(map[string]string{"password": "s3cret", "password2": "s3cret"})
		assert.True(t, v.Matches("password", "Password").Validate("password2", "Confirmation"))
	})

	t.Run("fails when fields differ", func(t *testing.T) {
		v := validate.New(map[string]string{"password": "s3cret", "password2": "other"})
		assert.False(t, v.Matches("password", "Password").Validate("password2", "Confirmation"))
		assert.Equal(t, "Confirmation must match Password.", v.GetError("password2"))
	})

	t.Run("compares against a build-time snapshot", func(t *testing.T) {
		inputs := map[string]string{"password": "s3cret", "password2": "s3cret"}
		v := validate.New(inputs)
		v.Matches("password", "Password")

		inputs["password"] = "changed-later"
		assert.True(t, v.Validate("password2", "Confirmation"))
	})

	t.Run("passes empty value", func(t *testing.T) {
		v := validate.New(map[string]string{"password": "s3cret", "password2": ""})
		assert.True(t, v.Matches("password", "Password").Validate("password2", "Confirmation"))
	})
}

func TestNotMatches(t *testing.T) {
	t.Run("passes when fields differ", func(t *testing.T) {
		v := validate.New(map[string]string{"username": "bob", "password": "s3cret"})
		assert.True(t, v.NotMatches("username", "Username").Validate("password", "Password"))
	})

	t.Run("fails when fields agree", func(t *testing.T) {
		v := validate.New(map[string]string{"username": "bob", "password": "bob"})
		assert.False(t, v.NotMatches("username", "Username").Validate("password", "Password"))
		assert.Equal(t, "Password must not match Username.", v.GetError("password"))
	})
}
