// Package llm — необязательный оракул генерации шагов теста из
// свободного описания. При отсутствии API ключа используется
// детерминированный разбор через internal/nlp.
package llm

import (
	"context"

	"github.com/rohitsharma007/automation-script-generator/internal/nlp"
)

// Oracle превращает описание сценария в структурированные шаги.
type Oracle interface {
	SuggestSteps(ctx context.Context, description string) ([]nlp.TestStep, error)
}

const systemPrompt = `Ты помощник по автоматизации UI тестов. По описанию сценария верни JSON массив шагов.
Каждый шаг: {"step_no": int, "action": "navigate|fill|click|select|verify|wait",
"element_type": "username|password|loginButton|successIndicator|" (пусто если неизвестно),
"selector": "CSS селектор или пусто", "value": "значение или URL", "description": "исходная фраза"}.
Верни ТОЛЬКО JSON массив, без пояснений.`
