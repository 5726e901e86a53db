package dailywords

// MaxRankedWords caps the ranked list kept for a day.
const MaxRankedWords = 200

type WordCount struct {
	Word  string
	Count int
}

func NewWordCount(word string, count int) WordCount {
	return WordCount{
		Word:  word,
		Count: count,
	}
}

// RankedWordList is ordered by count, highest first.
type RankedWordList []WordCount

// FrequencyTable counts words and remembers the order in which each word
// was first seen, which decides ties when ranking.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{
		counts: make(map[string]int),
	}
}

func (t *FrequencyTable) Add(word string) {
	if _, ok := t.counts[word]; !ok {
		t.order = append(t.order, word)
	}
	t.counts[word]++
}

func (t *FrequencyTable) AddTokens(tokenStream TokenStream) {
	for _, token := range tokenStream.Tokens {
		t.Add(token.Term)
	}
}

func (t *FrequencyTable) Count(word string) int {
	return t.counts[word]
}

func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// Rank returns at most limit words sorted by descending count.
func (t *FrequencyTable) Rank(limit int) RankedWordList {
	wcs := make(wordCounts, len(t.order))
	for i, w := range t.order {
		wcs[i] = NewWordCount(w, t.counts[w])
	}
	return NewCountSorter().Sort(wcs, limit)
}
