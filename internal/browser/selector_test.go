package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSelector(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		want        string
		wantChanged bool
	}{
		{
			name: "валидный селектор не трогаем",
			in:   "#login-button",
			want: "#login-button", wantChanged: false,
		},
		{
			name: "contains с двойными кавычками",
			in:   `button:contains("Войти")`,
			want: `button:has-text("Войти")`, wantChanged: true,
		},
		{
			name: "contains с одинарными кавычками",
			in:   `a:contains('Sign in')`,
			want: `a:has-text('Sign in')`, wantChanged: true,
		},
		{
			name: "contains без кавычек",
			in:   `button:contains(Submit)`,
			want: `button:has-text("Submit")`, wantChanged: true,
		},
		{
			name: "двоеточие с пробелом и текстом",
			in:   "button: Войти",
			want: `button:has-text("Войти")`, wantChanged: true,
		},
		{
			name: "псевдокласс не ломаем",
			in:   "button:first-child",
			want: "button:first-child", wantChanged: false,
		},
		{
			name: "has-text не трогаем",
			in:   `button:has-text("Go")`,
			want: `button:has-text("Go")`, wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := NormalizeSelector(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestValidateSelector(t *testing.T) {
	assert.NoError(t, ValidateSelector("#id"))
	assert.NoError(t, ValidateSelector(`[name="user"]`))
	assert.Error(t, ValidateSelector(""))
	assert.Error(t, ValidateSelector("https://example.com/login"))
	assert.Error(t, ValidateSelector("ftp://host/file"))
}
