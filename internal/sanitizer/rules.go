package sanitizer

import "regexp"

type passwordRule struct{}

var passwordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(password|пароль)\s*[:=]\s*["']?([^"'\s]{3,})["']?`),
	regexp.MustCompile(`(?i)(passwd|pwd)\s*[:=]\s*["']?([^"'\s]{3,})["']?`),
}

func (r *passwordRule) Sanitize(text string) string {
	for _, pattern := range passwordPatterns {
		text = pattern.ReplaceAllString(text, `${1}: [FILTERED]`)
	}
	return text
}

type tokenRule struct{}

var tokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(token|bearer|api[_-]?key)\s*[:=]\s*["']?([A-Za-z0-9_\-.]{8,})["']?`),
	regexp.MustCompile(`\beyJ[A-Za-z0-9_\-]{10,}\.[A-Za-z0-9_\-.]+\b`), // JWT
}

func (r *tokenRule) Sanitize(text string) string {
	text = tokenPatterns[0].ReplaceAllString(text, `${1}: [FILTERED]`)
	text = tokenPatterns[1].ReplaceAllString(text, `[FILTERED_TOKEN]`)
	return text
}

type emailRule struct{}

var emailPattern = regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)

func (r *emailRule) Sanitize(text string) string {
	return emailPattern.ReplaceAllString(text, `[FILTERED_EMAIL]`)
}
