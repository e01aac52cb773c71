package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rohitsharma007/automation-script-generator/internal/resolve"
)

type RunRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) CreateRun(run *TestRun) error {
	return r.db.Create(run).Error
}

func (r *RunRepository) GetRunByID(id uint) (*TestRun, error) {
	var run TestRun
	if err := r.db.First(&run, id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *RunRepository) ListRuns(limit, offset int) ([]TestRun, error) {
	var runs []TestRun
	if err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *RunRepository) UpdateRunStatus(id uint, status, summary string) error {
	return r.db.Model(&TestRun{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         status,
			"result_summary": summary,
		}).Error
}

func (r *RunRepository) CreateStepResult(step *StepResult) error {
	return r.db.Create(step).Error
}

func (r *RunRepository) ListStepResults(runID uint) ([]StepResult, error) {
	var steps []StepResult
	if err := r.db.Where("run_id = ?", runID).Order("step_no ASC").Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

func (r *RunRepository) CreateDetection(rec *DetectionRecord) error {
	return r.db.Create(rec).Error
}

func (r *RunRepository) ListDetections(elementType string, limit int) ([]DetectionRecord, error) {
	q := r.db.Order("id DESC").Limit(limit)
	if elementType != "" {
		q = q.Where("element_type = ?", elementType)
	}
	var recs []DetectionRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// DetectionSink подписывает базу на learning-записи движка разрешения.
// Вызывается fire-and-forget: ошибка записи не влияет на прогон.
type DetectionSink struct {
	repo *RunRepository
}

func NewDetectionSink(repo *RunRepository) *DetectionSink {
	return &DetectionSink{repo: repo}
}

func (s *DetectionSink) Record(_ context.Context, rec resolve.LearningRecord) error {
	return s.repo.CreateDetection(&DetectionRecord{
		ElementType: rec.ElementType,
		Selector:    rec.Selector,
		Strategy:    rec.Strategy,
		Confidence:  rec.Confidence,
		URL:         rec.URL,
		Success:     rec.Success,
	})
}
