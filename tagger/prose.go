package tagger

import (
	"github.com/jdkato/prose/v2"
)

// Prose wraps github.com/jdkato/prose so callers don't depend on it directly.
type Prose struct{}

func NewProse() *Prose {
	return &Prose{}
}

func (p *Prose) Tag(text string) ([]TaggedToken, error) {
	doc, err := prose.NewDocument(
		text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}
	tokens := doc.Tokens()
	tagged := make([]TaggedToken, 0, len(tokens))
	for _, token := range tokens {
		if token.Text == "" {
			continue
		}
		tagged = append(tagged, NewTaggedToken(token.Text, token.Tag))
	}
	return tagged, nil
}
