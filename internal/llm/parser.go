package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rohitsharma007/automation-script-generator/internal/nlp"
)

// parseStepsResponse достает JSON массив шагов из ответа модели.
// Модели любят заворачивать JSON в markdown-блоки и добавлять
// пояснения вокруг — вырезаем массив по крайним скобкам.
func parseStepsResponse(raw string) ([]nlp.TestStep, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("в ответе LLM нет JSON массива")
	}

	var steps []nlp.TestStep
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &steps); err != nil {
		return nil, fmt.Errorf("ошибка разбора ответа LLM: %w", err)
	}

	for i := range steps {
		if steps[i].StepNo == 0 {
			steps[i].StepNo = i + 1
		}
	}
	return steps, nil
}
