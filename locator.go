package dailywords

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultSearchBaseURL = "https://api.nytimes.com"
	ArticleSearchPath    = "/svc/search/v2/articlesearch.json"
	DefaultSource        = "The New York Times"
	DefaultPageDelay     = 100 * time.Millisecond
)

var DefaultNewsDesks = []string{"national", "world", "politics"}

type Locator interface {
	Locate(ctx context.Context, date time.Time) ([]string, error)
}

type SearchConfig struct {
	BaseURL   string
	APIKey    string
	NewsDesks []string
	Source    string
	// DayOffset shifts the queried day relative to the requested one.
	DayOffset int
	PageDelay time.Duration
	UserAgent string
}

func NewSearchConfig(apiKey string) SearchConfig {
	return SearchConfig{
		BaseURL:   DefaultSearchBaseURL,
		APIKey:    apiKey,
		NewsDesks: DefaultNewsDesks,
		Source:    DefaultSource,
		PageDelay: DefaultPageDelay,
	}
}

// ArticleSearchLocator pages through the article search API for one day and
// collects the web URL of every hit.
type ArticleSearchLocator struct {
	client  *http.Client
	config  SearchConfig
	limiter *rate.Limiter
	logger  *slog.Logger
}

func NewArticleSearchLocator(client *http.Client, config SearchConfig, logger *slog.Logger) *ArticleSearchLocator {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleSearchLocator{
		client:  client,
		config:  config,
		limiter: rate.NewLimiter(rate.Every(config.PageDelay), 1),
		logger:  logger,
	}
}

func (l *ArticleSearchLocator) Locate(ctx context.Context, date time.Time) ([]string, error) {
	day := DateString(date.AddDate(0, 0, l.config.DayOffset))
	l.logger.Info("locating articles", "date", DateString(date), "query_date", day)

	urls := []string{}
	for page := 0; ; page++ {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		docs, err := l.searchPage(ctx, day, page)
		if err != nil {
			return nil, fmt.Errorf("article search page %d: %w", page, err)
		}
		if len(docs) == 0 {
			l.logger.Info("article search complete", "pages", page, "urls", len(urls))
			return urls, nil
		}
		for _, d := range docs {
			urls = append(urls, d.WebURL)
		}
		l.logger.Debug("article search page", "page", page, "hits", len(docs))
	}
}

func (l *ArticleSearchLocator) searchPage(ctx context.Context, day string, page int) ([]searchDoc, error) {
	resp, err := get(ctx, l.client, l.pageURL(day, page), l.config.UserAgent)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return raw.Response.Docs, nil
}

func (l *ArticleSearchLocator) pageURL(day string, page int) string {
	q := url.Values{}
	q.Set("fq", filterQuery(l.config.NewsDesks, l.config.Source))
	q.Set("begin_date", day)
	q.Set("end_date", day)
	q.Set("fl", "web_url")
	q.Set("page", strconv.Itoa(page))
	q.Set("api-key", l.config.APIKey)
	return strings.TrimSuffix(l.config.BaseURL, "/") + ArticleSearchPath + "?" + q.Encode()
}

// filterQuery builds the Lucene filter, e.g.
// news_desk:("national" "world") AND source:("The New York Times")
func filterQuery(desks []string, source string) string {
	quoted := make([]string, len(desks))
	for i, d := range desks {
		quoted[i] = strconv.Quote(d)
	}
	fq := fmt.Sprintf("news_desk:(%s)", strings.Join(quoted, " "))
	if source != "" {
		fq += fmt.Sprintf(" AND source:(%s)", strconv.Quote(source))
	}
	return fq
}

type searchResponse struct {
	Response struct {
		Docs []searchDoc `json:"docs"`
	} `json:"response"`
}

type searchDoc struct {
	WebURL string `json:"web_url"`
}
