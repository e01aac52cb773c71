package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePassword(t *testing.T) {
	s := New()
	assert.Equal(t, "password: [FILTERED]", s.Sanitize(`password=secret123`))
	assert.Equal(t, "пароль: [FILTERED]", s.Sanitize(`пароль: qwerty99`))
	assert.Equal(t, "pwd: [FILTERED]", s.Sanitize(`pwd: 'hunter2x'`))
}

func TestSanitizeToken(t *testing.T) {
	s := New()
	assert.Equal(t, "token: [FILTERED]", s.Sanitize("token=abcd1234efgh"))
	assert.Contains(t, s.Sanitize("auth eyJhbGciOiJIUzI1NiJ9.payload.sig"), "[FILTERED_TOKEN]")
}

func TestSanitizeEmail(t *testing.T) {
	s := New()
	got := s.Sanitize("login as alice@example.com please")
	assert.Equal(t, "login as [FILTERED_EMAIL] please", got)
}

func TestSanitizePlainTextUntouched(t *testing.T) {
	s := New()
	assert.Equal(t, "click the button", s.Sanitize("click the button"))
	assert.Equal(t, "", s.Sanitize(""))
}

func TestSanitizeSelector(t *testing.T) {
	s := New()
	assert.Equal(t, "#password", s.SanitizeSelector("#password"))
	assert.Equal(t, "[FILTERED_SELECTOR]", s.SanitizeSelector("#api-key-input"))
	assert.Equal(t, "[FILTERED_SELECTOR]", s.SanitizeSelector(`[name="csrf_token"]`))
}

func TestMaskStepValue(t *testing.T) {
	s := New()
	assert.Equal(t, "[FILTERED]", s.MaskStepValue("password", "s3cret"))
	assert.Equal(t, "standard_user", s.MaskStepValue("username", "standard_user"))
	assert.Equal(t, "[FILTERED_EMAIL]", s.MaskStepValue("username", "a@b.io"))
	// Длинная токеноподобная строка маскируется даже без типа.
	assert.Equal(t, "[FILTERED]", s.MaskStepValue("", "AKIA0123456789ABCDEF0123456789"))
}
