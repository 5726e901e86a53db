package tagger

// Tagger splits text into words and assigns each a Penn Treebank
// part-of-speech tag.
type Tagger interface {
	Tag(string) ([]TaggedToken, error)
}

type TaggedToken struct {
	Text string
	Tag  string
}

func NewTaggedToken(text, tag string) TaggedToken {
	return TaggedToken{
		Text: text,
		Tag:  tag,
	}
}
