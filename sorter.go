package dailywords

import (
	"sort"
)

type Sorter interface {
	Sort([]WordCount, int) RankedWordList
}

// CountSorter orders by count descending. The sort is stable so equal
// counts keep their input order.
type CountSorter struct{}

func NewCountSorter() CountSorter {
	return CountSorter{}
}

func (s CountSorter) Sort(words []WordCount, limit int) RankedWordList {
	sorted := make(wordCounts, len(words))
	copy(sorted, words)
	sort.Stable(sorted)
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return RankedWordList(sorted)
}

type wordCounts []WordCount

func (wc wordCounts) Len() int           { return len(wc) }
func (wc wordCounts) Less(i, j int) bool { return wc[i].Count > wc[j].Count }
func (wc wordCounts) Swap(i, j int)      { wc[i], wc[j] = wc[j], wc[i] }
