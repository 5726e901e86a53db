package dailywords

import (
	"context"
	"fmt"
	"log/slog"
)

type Aggregator interface {
	Aggregate(ctx context.Context, urls []string) (RankedWordList, error)
}

type AggregateStats struct {
	Documents int // documents whose words were counted
	NotFound  int
	Skipped   int // rejected by the language guard
	Failed    int // only non-zero when SkipFailed is set
}

// WordAggregator fetches every article, runs its body through the analyzer
// and merges the surviving words into one frequency table.
type WordAggregator struct {
	Fetcher   Fetcher
	Extractor Extractor
	Analyzer  Analyzer
	Guard     LanguageGuard // optional
	// SkipFailed logs and skips a document that can't be fetched or
	// analyzed instead of aborting the whole aggregation.
	SkipFailed bool
	Logger     *slog.Logger
}

func NewWordAggregator(fetcher Fetcher, extractor Extractor, analyzer Analyzer, logger *slog.Logger) *WordAggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordAggregator{
		Fetcher:   fetcher,
		Extractor: extractor,
		Analyzer:  analyzer,
		Logger:    logger,
	}
}

func (a *WordAggregator) Aggregate(ctx context.Context, urls []string) (RankedWordList, error) {
	table := NewFrequencyTable()
	var stats AggregateStats
	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		outcome, err := a.addDocument(ctx, table, u)
		if err != nil {
			if !a.SkipFailed {
				return nil, err
			}
			a.logger().Warn("skipping document", "url", u, "error", err)
			stats.Failed++
			continue
		}
		switch outcome {
		case outcomeCounted:
			stats.Documents++
		case outcomeNotFound:
			stats.NotFound++
		case outcomeSkipped:
			stats.Skipped++
		}
	}

	ranked := table.Rank(MaxRankedWords)
	a.logger().Info("aggregation complete",
		"urls", len(urls),
		"documents", stats.Documents,
		"not_found", stats.NotFound,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
		"distinct_words", table.Len(),
		"ranked", len(ranked),
	)
	return ranked, nil
}

type outcome int

const (
	outcomeCounted outcome = iota
	outcomeNotFound
	outcomeSkipped
)

// addDocument adds one article's words to table. Nothing is added unless the
// whole document was analyzed, so a failure leaves table as it was.
func (a *WordAggregator) addDocument(ctx context.Context, table *FrequencyTable, url string) (outcome, error) {
	html, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		return 0, err
	}
	doc, err := a.Extractor.Extract(url, html)
	if err != nil {
		return 0, err
	}
	if doc.NotFound {
		a.logger().Debug("page not found", "url", url, "title", doc.Title)
		return outcomeNotFound, nil
	}
	if doc.Body == "" {
		a.logger().Debug("empty article", "url", url)
		return outcomeCounted, nil
	}
	if a.Guard != nil && !a.Guard.Accept(doc.Body) {
		a.logger().Debug("not english", "url", url)
		return outcomeSkipped, nil
	}
	tokens, err := a.Analyzer.Analyze(doc.Body)
	if err != nil {
		return 0, fmt.Errorf("analyze %s: %w", url, err)
	}
	table.AddTokens(tokens)
	a.logger().Debug("document counted", "url", url, "words", tokens.Size())
	return outcomeCounted, nil
}

func (a *WordAggregator) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}
