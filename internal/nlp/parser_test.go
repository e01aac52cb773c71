package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStepNavigate(t *testing.T) {
	step := ParseStep("Go to https://example.com/login")
	assert.Equal(t, ActionNavigate, step.Action)
	assert.Equal(t, "https://example.com/login", step.Value)
	assert.InDelta(t, 0.9, step.Confidence, 0.001)
}

func TestParseStepFill(t *testing.T) {
	step := ParseStep("Fill the email field with standard_user")
	assert.Equal(t, ActionFill, step.Action)
	assert.Equal(t, "standard_user", step.Value)
	assert.Equal(t, "username", step.ElementType)
	assert.Empty(t, step.Selector)
}

func TestParseStepFillPassword(t *testing.T) {
	step := ParseStep("Enter password field with secret_sauce")
	assert.Equal(t, ActionFill, step.Action)
	assert.Equal(t, "secret_sauce", step.Value)
	assert.Equal(t, "password", step.ElementType)
}

func TestParseStepFillExplicitSelector(t *testing.T) {
	step := ParseStep("Type #user-name with standard_user")
	assert.Equal(t, ActionFill, step.Action)
	assert.Equal(t, "#user-name", step.Selector)
}

func TestParseStepClick(t *testing.T) {
	step := ParseStep("Click on the sign in button")
	assert.Equal(t, ActionClick, step.Action)
	assert.Equal(t, "loginButton", step.ElementType)
}

func TestParseStepClickByName(t *testing.T) {
	step := ParseStep(`Click name=submit`)
	assert.Equal(t, ActionClick, step.Action)
	assert.Equal(t, `[name="submit"]`, step.Selector)
}

func TestParseStepVerify(t *testing.T) {
	step := ParseStep("Verify that dashboard is visible")
	assert.Equal(t, ActionVerify, step.Action)
	assert.Equal(t, "successIndicator", step.ElementType)
}

func TestParseStepSelect(t *testing.T) {
	step := ParseStep("Select 'Premium' from the plan dropdown")
	assert.Equal(t, ActionSelect, step.Action)
	assert.Equal(t, "Premium", step.Value)
}

func TestParseStepWait(t *testing.T) {
	step := ParseStep("Wait for 5 seconds")
	assert.Equal(t, ActionWait, step.Action)
	assert.Equal(t, 5, step.WaitSeconds)

	step = ParseStep("wait")
	assert.Equal(t, ActionWait, step.Action)
	assert.Equal(t, 1, step.WaitSeconds)
}

func TestParseStepUnknown(t *testing.T) {
	step := ParseStep("Do something mysterious")
	assert.Equal(t, ActionUnknown, step.Action)
	assert.InDelta(t, 0.3, step.Confidence, 0.001)
}

func TestParseStepsNumbersAndPrefixes(t *testing.T) {
	text := `Step 1: Go to https://shop.test/login
2. Fill the username field with alice
- Click the login button

Verify dashboard`

	steps := ParseSteps(text)
	require.Len(t, steps, 4)

	assert.Equal(t, 1, steps[0].StepNo)
	assert.Equal(t, ActionNavigate, steps[0].Action)
	assert.Equal(t, ActionFill, steps[1].Action)
	assert.Equal(t, "alice", steps[1].Value)
	assert.Equal(t, ActionClick, steps[2].Action)
	assert.Equal(t, "loginButton", steps[2].ElementType)
	assert.Equal(t, ActionVerify, steps[3].Action)
	assert.Equal(t, 4, steps[3].StepNo)
}

func TestGuessElementTypeOrder(t *testing.T) {
	// "login password" — это поле пароля, а не кнопка логина.
	assert.Equal(t, "password", GuessElementType("login password field"))
	assert.Equal(t, "username", GuessElementType("email address"))
	assert.Equal(t, "loginButton", GuessElementType("sign in button"))
	assert.Empty(t, GuessElementType("random text"))
}

func TestExtractSelector(t *testing.T) {
	assert.Equal(t, "#login", ExtractSelector("the #login field"))
	assert.Equal(t, `[name="user"]`, ExtractSelector(`field name=user`))
	assert.Equal(t, `:has-text("Войти")`, ExtractSelector(`button text='Войти'`))
	assert.Equal(t, ".submit-btn", ExtractSelector("the .submit-btn control"))
	assert.Empty(t, ExtractSelector("the login button"))
}
