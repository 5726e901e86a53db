package dailywords

import (
	"github.com/kotaroooo0/dailywords/tagger"
)

type Tokenizer interface {
	Tokenize(string) (TokenStream, error)
}

// TaggingTokenizer splits text into words and keeps the part-of-speech tag
// assigned to each of them.
type TaggingTokenizer struct {
	tagger tagger.Tagger
}

func NewTaggingTokenizer(tagger tagger.Tagger) TaggingTokenizer {
	return TaggingTokenizer{
		tagger: tagger,
	}
}

func (t TaggingTokenizer) Tokenize(s string) (TokenStream, error) {
	tagged, err := t.tagger.Tag(s)
	if err != nil {
		return TokenStream{}, err
	}
	tokens := make([]Token, len(tagged))
	for i, tt := range tagged {
		tokens[i] = NewToken(tt.Text, SetTag(tt.Tag))
	}
	return NewTokenStream(tokens), nil
}
