// Package database предоставляет модели данных и репозиторий для работы с PostgreSQL.
// Использует GORM ORM с prepared statements для защиты от SQL injection.
package database

import "time"

// TestRun представляет один прогон тест-кейса.
// Статусы: pending, running, passed, failed.
type TestRun struct {
	ID            uint      `gorm:"primaryKey"`
	TestCaseID    string    `gorm:"type:varchar(128);index;not null"` // Идентификатор тест-кейса
	TargetURL     string    `gorm:"type:text"`                        // Адрес тестируемой страницы
	Status        string    `gorm:"type:varchar(32);not null;default:'pending'"` // Статус прогона
	ResultSummary string    `gorm:"type:text"`                        // Итог прогона
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// StepResult представляет результат одного шага прогона.
type StepResult struct {
	ID          uint      `gorm:"primaryKey"`
	RunID       uint      `gorm:"index;not null"`            // ID прогона
	StepNo      int       `gorm:"not null"`                  // Номер шага
	Action      string    `gorm:"type:varchar(64);not null"` // Действие (navigate, fill, click, verify)
	ElementType string    `gorm:"type:varchar(64)"`          // Семантический тип элемента
	Selector    string    `gorm:"type:text"`                 // CSS селектор (после санитайзера)
	Value       string    `gorm:"type:text"`                 // Значение шага (после санитайзера)
	Confidence  int                                          // Уверенность разрешения 0-100
	Strategy    string    `gorm:"type:varchar(64)"`          // Сработавшая стратегия поиска
	Status      string    `gorm:"type:varchar(32);not null"` // passed / failed / skipped
	Result      string    `gorm:"type:text"`                 // Детали результата или ошибки
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// DetectionRecord — запись об успешном разрешении элемента: какой
// селектор сработал для какого типа на каком адресе. Пишется движком
// разрешения через learning sink.
type DetectionRecord struct {
	ID          uint      `gorm:"primaryKey"`
	ElementType string    `gorm:"type:varchar(64);index;not null"`
	Selector    string    `gorm:"type:text;not null"`
	Strategy    string    `gorm:"type:varchar(64)"`
	Confidence  int
	URL         string    `gorm:"type:text"`
	Success     bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
