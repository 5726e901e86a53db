// dailywords counts the most frequent content words in one day of news and
// stores them by date.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/kotaroooo0/dailywords"
	"github.com/kotaroooo0/dailywords/config"
	"github.com/kotaroooo0/dailywords/tagger"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "dailywords",
	Short:         "Count and store the most frequent words in a day of news",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		if format, _ := cmd.Flags().GetString("log-format"); format != "" {
			cfg.Logging.Format = format
		}
		logger = newLogger(cfg.Logging)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./dailywords.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format override (text, json)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(schemaCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dailywords %s (%s)\n", version, commit)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Retrieve a day's articles, count their words and store the top words",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateFlag(cmd)
		if err != nil {
			return err
		}
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		if err := cfg.Search.Validate(); err != nil {
			return err
		}

		retriever := dailywords.NewRetriever(newLocator(cfg), newAggregator(cfg), nil, logger)

		if dryRun {
			words, err := retriever.DryRun(cmd.Context(), date)
			if err != nil {
				return err
			}
			pp.Println(words)
			return nil
		}

		if err := cfg.Database.Validate(); err != nil {
			return err
		}
		storage, closeDB, err := openStorage(cfg.Database)
		if err != nil {
			return err
		}
		defer closeDB()
		retriever.Storage = storage

		_, err = retriever.Run(cmd.Context(), date)
		return err
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the words stored for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateFlag(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Database.Validate(); err != nil {
			return err
		}
		storage, closeDB, err := openStorage(cfg.Database)
		if err != nil {
			return err
		}
		defer closeDB()

		records, err := storage.GetWords(date)
		if err != nil {
			return err
		}
		pp.Println(records)
		return nil
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the words table if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Database.Validate(); err != nil {
			return err
		}
		storage, closeDB, err := openStorage(cfg.Database)
		if err != nil {
			return err
		}
		defer closeDB()
		if err := storage.EnsureSchema(); err != nil {
			return fmt.Errorf("create words table: %w", err)
		}
		logger.Info("words table ready", "driver", cfg.Database.Driver)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{runCmd, showCmd} {
		c.Flags().String("date", "", "day to process as YYYY-MM-DD (default: yesterday)")
	}
	runCmd.Flags().Bool("dry-run", false, "print the ranked words instead of storing them")
}

func dateFlag(cmd *cobra.Command) (time.Time, error) {
	s, _ := cmd.Flags().GetString("date")
	if s == "" {
		y, m, d := time.Now().AddDate(0, 0, -1).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return dailywords.ParseDate(s)
}

func newLocator(cfg *config.Config) dailywords.Locator {
	return dailywords.NewArticleSearchLocator(
		dailywords.NewHTTPClient(cfg.HTTP.Timeout),
		dailywords.SearchConfig{
			BaseURL:   cfg.Search.BaseURL,
			APIKey:    cfg.Search.APIKey,
			NewsDesks: cfg.Search.NewsDesks,
			Source:    cfg.Search.Source,
			DayOffset: cfg.Search.DayOffset,
			PageDelay: cfg.Search.PageDelay,
			UserAgent: cfg.HTTP.UserAgent,
		},
		logger,
	)
}

func newAggregator(cfg *config.Config) *dailywords.WordAggregator {
	aggregator := dailywords.NewWordAggregator(
		dailywords.NewHTTPFetcher(dailywords.NewHTTPClient(cfg.HTTP.Timeout), cfg.HTTP.UserAgent),
		dailywords.NewHTMLExtractor(
			dailywords.WithNotFoundMarker(cfg.Extract.NotFoundMarker),
			dailywords.WithBodySelector(cfg.Extract.BodySelector),
			dailywords.WithReadabilityFallback(cfg.Extract.ReadabilityFallback),
		),
		dailywords.NewNewsAnalyzer(tagger.NewProse(), cfg.Analysis.StopWords, cfg.Analysis.Stem),
		logger,
	)
	aggregator.SkipFailed = cfg.Aggregate.SkipFailedDocuments
	if cfg.Extract.EnglishOnly {
		aggregator.Guard = dailywords.NewEnglishGuard()
	}
	return aggregator
}

func openStorage(d config.DatabaseConfig) (*dailywords.StorageRdbImpl, func(), error) {
	db, err := dailywords.NewDBClient(&dailywords.DBConfig{
		Driver:   d.Driver,
		User:     d.User,
		Password: d.Password,
		Addr:     d.Host,
		Port:     d.Port,
		DB:       d.Name,
		Path:     d.Path,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("connect to %s database: %w", d.Driver, err)
	}
	return dailywords.NewStorageRdbImpl(db), func() { db.Close() }, nil
}

func newLogger(c config.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
