package dailywords

import "strings"

// ArticleCharMapping blanks out the characters that split badly when
// tokenizing news prose.
var ArticleCharMapping = []string{".", " ", "'", " "}

type CharFilter interface {
	Filter(string) string
}

type MappingCharFilter struct {
	replacer *strings.Replacer
}

// NewMappingCharFilter takes old, new string pairs in the same form as strings.NewReplacer.
func NewMappingCharFilter(oldnew []string) MappingCharFilter {
	return MappingCharFilter{replacer: strings.NewReplacer(oldnew...)}
}

func (c MappingCharFilter) Filter(s string) string {
	return c.replacer.Replace(s)
}
