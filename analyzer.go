package dailywords

import (
	"github.com/kotaroooo0/dailywords/tagger"
)

type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, tokenizer Tokenizer, tokenFilters []TokenFilter) Analyzer {
	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

// NewNewsAnalyzer builds the pipeline used for article bodies:
// strip periods and apostrophes, tag, keep content words longer than two
// characters, uppercase and drop stop words.
func NewNewsAnalyzer(t tagger.Tagger, stopWords []string, stem bool) Analyzer {
	tokenFilters := []TokenFilter{NewTagFilter(CountedTags)}
	if stem {
		tokenFilters = append(tokenFilters, NewStemmerFilter())
	}
	tokenFilters = append(tokenFilters,
		NewMinLengthFilter(MinWordLength),
		NewUppercaseFilter(),
		NewStopWordFilter(stopWords),
	)
	return NewAnalyzer(
		[]CharFilter{NewMappingCharFilter(ArticleCharMapping)},
		NewTaggingTokenizer(t),
		tokenFilters,
	)
}

func (a Analyzer) Analyze(s string) (TokenStream, error) {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	tokenStream, err := a.tokenizer.Tokenize(s)
	if err != nil {
		return TokenStream{}, err
	}
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream, nil
}
