package dailywords

import (
	"github.com/pemistahl/lingua-go"
)

type LanguageGuard interface {
	Accept(text string) bool
}

// EnglishGuard rejects text that lingua confidently identifies as another
// language. Text it can't decide on is accepted.
type EnglishGuard struct {
	detector lingua.LanguageDetector
}

func NewEnglishGuard() *EnglishGuard {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Spanish,
			lingua.French,
			lingua.German,
			lingua.Italian,
			lingua.Portuguese,
			lingua.Chinese,
			lingua.Arabic,
			lingua.Russian,
		).
		WithMinimumRelativeDistance(0.25).
		Build()
	return &EnglishGuard{detector: detector}
}

func (g *EnglishGuard) Accept(text string) bool {
	language, ok := g.detector.DetectLanguageOf(text)
	if !ok {
		return true
	}
	return language == lingua.English
}
