package resolve

import "sort"

// Встроенные типы элементов. Список открытый: новые типы
// регистрируются через Catalog.Register.
const (
	TypeUsername         = "username"
	TypePassword         = "password"
	TypeLoginButton      = "loginButton"
	TypeSuccessIndicator = "successIndicator"
)

// PatternEntry — набор паттернов одного типа элемента. Все поля
// опциональны: стратегия молча пропускается, если ее поле пустое.
type PatternEntry struct {
	// Selectors — CSS селекторы в порядке авторского приоритета.
	Selectors []string
	// AttributeFragments — подстроки для поиска по id/name/class/data-атрибутам.
	AttributeFragments []string
	// LabelTexts — фразы для поиска связанного <label>.
	LabelTexts []string
	// PlaceholderTexts — подстроки placeholder (регистрозависимые).
	PlaceholderTexts []string
	// ButtonTexts — фразы текста кнопок и ссылок.
	ButtonTexts []string
	// CSSClasses — классы, пробуемые как ".class" после Selectors.
	CSSClasses []string
}

// Catalog — реестр паттернов по типу элемента. НЕ потокобезопасен:
// конкурирующие сессии должны синхронизировать доступ сами или
// работать с копией через Clone.
type Catalog struct {
	entries map[string]PatternEntry
}

func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]PatternEntry)}
}

// Register добавляет или заменяет запись типа. Регистрация новых
// типов на лету — поддерживаемая точка расширения.
func (c *Catalog) Register(elementType string, entry PatternEntry) {
	c.entries[elementType] = entry
}

func (c *Catalog) Get(elementType string) (PatternEntry, bool) {
	e, ok := c.entries[elementType]
	return e, ok
}

// Types возвращает зарегистрированные типы в стабильном порядке.
func (c *Catalog) Types() []string {
	types := make([]string, 0, len(c.entries))
	for t := range c.entries {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Clone делает глубокую копию для изолированной сессии.
func (c *Catalog) Clone() *Catalog {
	cp := NewCatalog()
	for t, e := range c.entries {
		cp.entries[t] = PatternEntry{
			Selectors:          append([]string(nil), e.Selectors...),
			AttributeFragments: append([]string(nil), e.AttributeFragments...),
			LabelTexts:         append([]string(nil), e.LabelTexts...),
			PlaceholderTexts:   append([]string(nil), e.PlaceholderTexts...),
			ButtonTexts:        append([]string(nil), e.ButtonTexts...),
			CSSClasses:         append([]string(nil), e.CSSClasses...),
		}
	}
	return cp
}

// DefaultCatalog — паттерны форм логина, собранные с реальных сайтов.
func DefaultCatalog() *Catalog {
	c := NewCatalog()

	c.Register(TypeUsername, PatternEntry{
		Selectors: []string{
			`input[type="email"]`,
			`input[name="email"]`,
			`input[name="username"]`,
			`input[name="login"]`,
			`#email`,
			`#username`,
			`#user-name`,
			`#login`,
		},
		AttributeFragments: []string{"email", "user", "login"},
		LabelTexts:         []string{"email", "username", "user name", "login", "логин", "почта"},
		PlaceholderTexts:   []string{"Email", "email", "Username", "username", "user"},
		CSSClasses:         []string{"login-email", "login-username"},
	})

	c.Register(TypePassword, PatternEntry{
		Selectors: []string{
			`input[type="password"]`,
			`input[name="password"]`,
			`#password`,
			`#pass`,
		},
		AttributeFragments: []string{"pass", "pwd"},
		LabelTexts:         []string{"password", "пароль"},
		PlaceholderTexts:   []string{"Password", "password"},
		CSSClasses:         []string{"login-password"},
	})

	c.Register(TypeLoginButton, PatternEntry{
		Selectors: []string{
			`button[type="submit"]`,
			`input[type="submit"]`,
			`#login-button`,
			`#signin`,
		},
		AttributeFragments: []string{"login", "signin", "submit"},
		ButtonTexts:        []string{"sign in", "log in", "login", "submit", "войти"},
		CSSClasses:         []string{"login-button", "btn-login", "signin-button"},
	})

	c.Register(TypeSuccessIndicator, PatternEntry{
		Selectors: []string{
			`#dashboard`,
			`.dashboard`,
			`[data-testid*="dashboard"]`,
			`nav`,
			`[role="main"]`,
		},
		AttributeFragments: []string{"dashboard", "welcome", "profile", "logout"},
		ButtonTexts:        []string{"logout", "sign out", "выйти"},
	})

	return c
}
