package resolve

import (
	"context"
	"sync"
	"time"
)

// LearningRecord — аудитная запись об успешном разрешении. Лог
// append-only и живет в памяти процесса: он НЕ влияет на порядок
// стратегий, только фиксирует, какой селектор сработал для какого
// типа на каком адресе.
type LearningRecord struct {
	ElementType string    `json:"element_type"`
	Selector    string    `json:"selector"`
	Strategy    string    `json:"strategy"`
	Confidence  int       `json:"confidence"`
	URL         string    `json:"url"`
	Timestamp   time.Time `json:"timestamp"`
	Success     bool      `json:"success"`
}

// Sink — необязательный внешний приемник записей (например, база).
// Вызывается fire-and-forget: его ошибки никогда не меняют исход
// разрешения.
type Sink interface {
	Record(ctx context.Context, rec LearningRecord) error
}

// LearningLog — потокобезопасный накопитель записей сессии.
type LearningLog struct {
	mu      sync.Mutex
	records []LearningRecord
}

func NewLearningLog() *LearningLog {
	return &LearningLog{}
}

func (l *LearningLog) Append(rec LearningRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
}

// Records возвращает копию накопленных записей.
func (l *LearningLog) Records() []LearningRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LearningRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *LearningLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
