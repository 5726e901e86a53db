package dailywords

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Retriever runs one day end to end: locate the day's articles, count their
// words and store the ranking.
type Retriever struct {
	Locator    Locator
	Aggregator Aggregator
	Storage    Storage
	Logger     *slog.Logger
}

func NewRetriever(locator Locator, aggregator Aggregator, storage Storage, logger *slog.Logger) *Retriever {
	if logger == nil {
		logger = slog.Default()
	}
	return &Retriever{
		Locator:    locator,
		Aggregator: aggregator,
		Storage:    storage,
		Logger:     logger,
	}
}

func (r *Retriever) Run(ctx context.Context, date time.Time) (RankedWordList, error) {
	words, err := r.DryRun(ctx, date)
	if err != nil {
		return nil, err
	}
	if err := r.Storage.AddWords(words, date); err != nil {
		return nil, fmt.Errorf("store words for %s: %w", DateString(date), err)
	}
	r.logger().Info("words stored", "date", DateString(date), "rows", len(words))
	return words, nil
}

// DryRun does everything Run does except writing to storage.
func (r *Retriever) DryRun(ctx context.Context, date time.Time) (RankedWordList, error) {
	start := time.Now()
	urls, err := r.Locator.Locate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("locate articles for %s: %w", DateString(date), err)
	}
	r.logger().Info("articles located", "date", DateString(date), "urls", len(urls))

	words, err := r.Aggregator.Aggregate(ctx, urls)
	if err != nil {
		return nil, fmt.Errorf("aggregate words for %s: %w", DateString(date), err)
	}
	r.logger().Info("words ranked", "date", DateString(date), "words", len(words), "elapsed", time.Since(start))
	return words, nil
}

func (r *Retriever) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}
