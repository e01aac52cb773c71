// Package resolve реализует эвристический поиск элементов страницы по
// семантическому типу (username, password, loginButton и т.д.) без
// жестко заданных селекторов. Поиск идет по конвейеру стратегий в
// фиксированном порядке: первая сработавшая стратегия останавливает
// конвейер, найденный элемент получает оценку уверенности 0-100 и
// переиспользуемый CSS селектор.
package resolve

import "context"

// Page абстрагирует живую страницу браузера. Реализация на playwright
// находится в internal/browser; в тестах используется in-memory fake.
type Page interface {
	// Query возвращает первый элемент по селектору или nil, если его нет.
	Query(ctx context.Context, selector string) (Element, error)

	// QueryAll возвращает все элементы по селектору в порядке DOM.
	QueryAll(ctx context.Context, selector string) ([]Element, error)

	// Count возвращает количество элементов по селектору.
	// Используется синтезатором для проверки уникальности класса.
	Count(ctx context.Context, selector string) (int, error)

	// URL возвращает текущий адрес страницы.
	URL() string
}

// Element — непрозрачная ссылка на живой DOM узел. Ядро не хранит
// элементы дольше одного вызова Resolve.
type Element interface {
	// Probe извлекает атрибуты, видимость, геометрию и цепочку предков
	// элемента за один вызов в контексте страницы.
	Probe(ctx context.Context) (*Probe, error)

	// Query ищет первый потомок по селектору или nil.
	Query(ctx context.Context, selector string) (Element, error)

	// QueryAll ищет всех потомков по селектору.
	QueryAll(ctx context.Context, selector string) ([]Element, error)

	// NextSibling возвращает следующий элемент-сосед или nil.
	NextSibling(ctx context.Context) (Element, error)

	Fill(ctx context.Context, value string) error
	Click(ctx context.Context) error
}

// Probe содержит все, что нужно стратегиям, скорингу и синтезатору
// селекторов. Заполняется одним round-trip к странице, чтобы не делать
// N+1 запросов на кандидата.
type Probe struct {
	Tag         string
	Type        string
	ID          string
	Name        string
	Classes     []string
	Text        string
	Value       string
	Placeholder string
	For         string // атрибут for у label

	Displayed bool // display != none
	Visible   bool // полный предикат: display, visibility, opacity, геометрия
	Width     float64
	Height    float64

	// Path — цепочка от самого элемента вверх к корню (элемент первым),
	// максимум 6 уровней. Нужна синтезатору структурных селекторов.
	Path []PathNode
}

// PathNode описывает один уровень цепочки предков.
type PathNode struct {
	Tag          string
	ID           string
	FirstClass   string
	NthIndex     int // позиция среди детей родителя, с 1
	SiblingCount int // сколько всего детей у родителя
}

// IsVisible — предикат видимости для стратегий 1-5: элемент отображен,
// не скрыт и имеет ненулевую геометрию.
func (p *Probe) IsVisible() bool {
	return p.Visible
}
