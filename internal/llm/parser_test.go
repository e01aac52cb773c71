package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStepsResponsePlainJSON(t *testing.T) {
	raw := `[{"step_no":1,"action":"navigate","value":"https://a.test"},{"action":"click","element_type":"loginButton"}]`
	steps, err := parseStepsResponse(raw)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "navigate", steps[0].Action)
	// Номер шага проставляется, если модель его не вернула.
	assert.Equal(t, 2, steps[1].StepNo)
}

func TestParseStepsResponseMarkdownFence(t *testing.T) {
	raw := "```json\n[{\"action\":\"fill\",\"element_type\":\"username\",\"value\":\"alice\"}]\n```"
	steps, err := parseStepsResponse(raw)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "alice", steps[0].Value)
}

func TestParseStepsResponseWithProse(t *testing.T) {
	raw := `Вот шаги теста:
[{"action":"verify","element_type":"successIndicator"}]
Надеюсь, помогло!`
	steps, err := parseStepsResponse(raw)
	require.NoError(t, err)
	require.Len(t, steps, 1)
}

func TestParseStepsResponseNoArray(t *testing.T) {
	_, err := parseStepsResponse("извините, не могу")
	assert.Error(t, err)
}

func TestFallbackOracle(t *testing.T) {
	f := NewFallback()
	steps, err := f.SuggestSteps(context.Background(), "Go to https://a.test\nClick the login button")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "navigate", steps[0].Action)
	assert.Equal(t, "loginButton", steps[1].ElementType)
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	r := NewRateLimiter(2)

	require.NoError(t, r.Wait(context.Background()))
	require.NoError(t, r.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := r.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
