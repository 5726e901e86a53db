package dailywords

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrequencyTable(t *testing.T) {
	table := NewFrequencyTable()
	for _, w := range []string{"SENATE", "BILL", "SENATE", "VOTE", "BILL", "SENATE"} {
		table.Add(w)
	}

	cases := []struct {
		word  string
		count int
	}{
		{word: "SENATE", count: 3},
		{word: "BILL", count: 2},
		{word: "VOTE", count: 1},
		{word: "HOUSE", count: 0},
	}
	for _, tt := range cases {
		if got := table.Count(tt.word); got != tt.count {
			t.Errorf("Count(%q) = %d, want %d", tt.word, got, tt.count)
		}
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}

	expected := RankedWordList{{"SENATE", 3}, {"BILL", 2}, {"VOTE", 1}}
	if diff := cmp.Diff(table.Rank(MaxRankedWords), expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestFrequencyTableRankTiesKeepFirstSeenOrder(t *testing.T) {
	table := NewFrequencyTable()
	table.AddTokens(NewTokenStream([]Token{
		NewToken("ZEBRA"), NewToken("APPLE"), NewToken("MANGO"), NewToken("APPLE"),
	}))

	expected := RankedWordList{{"APPLE", 2}, {"ZEBRA", 1}, {"MANGO", 1}}
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(table.Rank(MaxRankedWords), expected); diff != "" {
			t.Errorf("Diff: (-got +want)\n%s", diff)
		}
	}
}

func TestFrequencyTableRankLength(t *testing.T) {
	cases := []struct {
		distinct int
		expected int
	}{
		{distinct: 0, expected: 0},
		{distinct: 10, expected: 10},
		{distinct: 200, expected: 200},
		{distinct: 350, expected: 200},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("distinct = %v, expected = %v", tt.distinct, tt.expected), func(t *testing.T) {
			table := NewFrequencyTable()
			for i := 0; i < tt.distinct; i++ {
				word := fmt.Sprintf("WORD%03d", i)
				for j := 0; j <= i%7; j++ {
					table.Add(word)
				}
			}
			ranked := table.Rank(MaxRankedWords)
			if len(ranked) != tt.expected {
				t.Fatalf("len(Rank()) = %d, want %d", len(ranked), tt.expected)
			}
			for i := 1; i < len(ranked); i++ {
				if ranked[i-1].Count < ranked[i].Count {
					t.Fatalf("not sorted at %d: %v before %v", i, ranked[i-1], ranked[i])
				}
			}
		})
	}
}
