package resolve

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Result — итог успешного разрешения: живой элемент, переиспользуемый
// селектор и отчетная уверенность 0-100.
type Result struct {
	Element    Element
	Selector   string
	Confidence int
	Strategy   string
}

// Session разрешает семантические типы элементов на одной странице.
// Внутри одного вызова Resolve стратегии идут строго последовательно;
// ретраев и ожиданий нет — динамический контент должен загрузиться до
// вызова, либо вызывающий повторяет Resolve сам.
type Session struct {
	page     Page
	catalog  *Catalog
	log      *zap.Logger
	learning *LearningLog
	sink     Sink
}

// Option настраивает сессию при создании.
type Option func(*Session)

// WithSink подключает внешний приемник learning-записей.
func WithSink(sink Sink) Option {
	return func(s *Session) { s.sink = sink }
}

// NewSession создает сессию поверх страницы. Каталог передается по
// ссылке и не копируется: конкурирующим сессиям нужен Clone.
func NewSession(page Page, catalog *Catalog, log *zap.Logger, opts ...Option) *Session {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		page:     page,
		catalog:  catalog,
		log:      log,
		learning: NewLearningLog(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog возвращает каталог сессии для регистрации новых типов.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// Learning возвращает аудитный лог успешных разрешений.
func (s *Session) Learning() *LearningLog {
	return s.learning
}

// Resolve ищет элемент заданного типа. fallbackSelector — необязательный
// явный селектор, которому доверяют без проверки видимости, если все
// стратегии провалились. Единственная возвращаемая ошибка —
// ErrElementNotFound (через NotFoundError).
func (s *Session) Resolve(ctx context.Context, elementType, fallbackSelector string) (*Result, error) {
	entry, _ := s.catalog.Get(elementType)

	attempted := make([]string, 0, len(pipeline)+1)
	for _, st := range pipeline {
		attempted = append(attempted, st.name)

		det, err := st.run(ctx, s.page, entry, elementType)
		if err != nil {
			// Сбой стратегии — это "ничего не нашла", не фатал.
			s.log.Debug("стратегия завершилась ошибкой",
				zap.String("strategy", st.name),
				zap.String("element_type", elementType),
				zap.Error(err))
			continue
		}
		if det == nil {
			continue
		}
		return s.finish(ctx, elementType, det), nil
	}

	// Явному селектору вызывающего доверяем: видимость не проверяется.
	if fallbackSelector != "" {
		attempted = append(attempted, "fallback-selector")
		el, err := s.page.Query(ctx, fallbackSelector)
		if err == nil && el != nil {
			det := &detection{element: el, selector: fallbackSelector, strategy: "fallback-selector"}
			if p, perr := el.Probe(ctx); perr == nil {
				det.probe = p
			}
			return s.finish(ctx, elementType, det), nil
		}
	}

	s.log.Warn("элемент не найден",
		zap.String("element_type", elementType),
		zap.String("url", s.page.URL()))
	return nil, &NotFoundError{ElementType: elementType, Attempted: attempted}
}

// finish доводит найденный элемент до результата: синтезирует селектор
// при необходимости, считает уверенность и пишет learning-запись.
func (s *Session) finish(ctx context.Context, elementType string, det *detection) *Result {
	selector := det.selector
	confidence := 0
	if det.probe != nil {
		if selector == "" {
			selector = Synthesize(ctx, s.page, det.probe)
		}
		confidence = ReportScore(det.probe, elementType)
	}

	s.log.Info("элемент найден",
		zap.String("element_type", elementType),
		zap.String("strategy", det.strategy),
		zap.String("selector", selector),
		zap.Int("confidence", confidence))

	rec := LearningRecord{
		ElementType: elementType,
		Selector:    selector,
		Strategy:    det.strategy,
		Confidence:  confidence,
		URL:         s.page.URL(),
		Timestamp:   time.Now(),
		Success:     true,
	}
	s.learning.Append(rec)
	if s.sink != nil {
		if err := s.sink.Record(ctx, rec); err != nil {
			// Ошибка приемника не влияет на исход разрешения.
			s.log.Warn("не удалось записать learning-запись", zap.Error(err))
		}
	}

	return &Result{
		Element:    det.element,
		Selector:   selector,
		Confidence: confidence,
		Strategy:   det.strategy,
	}
}
