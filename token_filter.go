package dailywords

import (
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
)

// Penn Treebank tags whose words are counted: nouns, proper nouns, plural
// nouns, past participles, past tense verbs, cardinal numbers, adverbs and
// adjectives.
var CountedTags = []string{"NN", "NNP", "NNS", "VBN", "VBD", "CD", "RB", "JJ"}

// Words this short are never counted.
const MinWordLength = 2

var DefaultStopWords = []string{
	"THE", "WAS", "NOT", "HAD", "WERE", "BEEN", "EVEN", "ALSO", "MANY", "SAID",
}

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

type TagFilter struct {
	tags map[string]struct{}
}

func NewTagFilter(tags []string) TagFilter {
	m := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return TagFilter{tags: m}
}

func (f TagFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if _, ok := f.tags[token.Tag]; ok {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

// MinLengthFilter drops tokens whose term has min or fewer characters.
type MinLengthFilter struct {
	min int
}

func NewMinLengthFilter(minLength int) MinLengthFilter {
	return MinLengthFilter{min: minLength}
}

func (f MinLengthFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if utf8.RuneCountInString(token.Term) > f.min {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

type UppercaseFilter struct{}

func NewUppercaseFilter() UppercaseFilter {
	return UppercaseFilter{}
}

func (f UppercaseFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		r[i] = NewToken(strings.ToUpper(token.Term), SetTag(token.Tag))
	}
	return NewTokenStream(r)
}

// StopWordFilter compares case-insensitively; the list is uppercased once.
type StopWordFilter struct {
	stopWords map[string]struct{}
}

func NewStopWordFilter(stopWords []string) StopWordFilter {
	m := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		m[strings.ToUpper(w)] = struct{}{}
	}
	return StopWordFilter{
		stopWords: m,
	}
}

func (f StopWordFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if _, ok := f.stopWords[strings.ToUpper(token.Term)]; !ok {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

type StemmerFilter struct{}

func NewStemmerFilter() StemmerFilter {
	return StemmerFilter{}
}

func (f StemmerFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		stemmed := english.Stem(token.Term, false)
		r[i] = NewToken(stemmed, SetTag(token.Tag))
	}
	return NewTokenStream(r)
}
