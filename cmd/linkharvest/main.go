package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"linkharvest/internal/config"
	"linkharvest/internal/logging"
	"linkharvest/pkg/analyzer"
	"linkharvest/pkg/crawler"
	"linkharvest/pkg/reporter"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "linkharvest",
	Short: "linkharvest - categorizing web crawler",
	Long: `linkharvest crawls a site from a seed URL, groups discovered links under
categories extracted from page headings and list items, and ranks the
collected URLs by how often the categories reference them.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var crawlCmd = &cobra.Command{
	Use:   "crawl [URL]",
	Short: "Crawl a site and categorize the discovered links",
	Args:  cobra.ExactArgs(1),
	RunE:  runCrawl,
}

func runCrawl(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Crawler.Seed = args[0]
	if cmd.Flags().Changed("max-pages") {
		cfg.Crawler.MaxPages, _ = cmd.Flags().GetInt("max-pages")
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.Crawler.MaxDepth, _ = cmd.Flags().GetInt("max-depth")
	}
	if cmd.Flags().Changed("keywords") {
		cfg.Crawler.Keywords, _ = cmd.Flags().GetStringSlice("keywords")
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Crawler.Strategy, _ = cmd.Flags().GetString("strategy")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.Setup(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	bar := progressbar.NewOptions(cfg.Crawler.MaxPages,
		progressbar.OptionSetDescription("crawling"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
	)

	engine, err := crawler.New(cfg.Crawler,
		crawler.WithErrorSink(logging.NewSink(logger)),
		crawler.WithLogger(logger),
		crawler.WithProgress(func(visited, _ int) {
			_ = bar.Set(visited)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create crawler: %w", err)
	}

	// Ctrl-C requests cooperative cancellation; the run still returns the
	// partial result.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handle := engine.Start(ctx)
	report, err := handle.Report()
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}
	_ = bar.Finish()
	fmt.Println()

	fmt.Printf("Visited %d pages starting from %s (%s)\n", report.Visited, report.Seed, report.Status)
	for category, links := range report.Categories {
		fmt.Printf("\n[%s]:\n", category)
		for _, link := range links {
			fmt.Println(link)
		}
	}

	if ranked := analyzer.RankLinks(report.Categories); len(ranked) > 0 {
		fmt.Println("\nTop referenced URLs:")
		for i, entry := range ranked {
			if i >= 10 {
				break
			}
			fmt.Printf("%d. %s (%d)\n", i+1, entry.URL, entry.Refs)
		}
	}

	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		if err := reporter.Save(output, report.Categories); err != nil {
			return fmt.Errorf("failed to export results: %w", err)
		}
		fmt.Printf("Results exported to %s\n", output)
	}
	return nil
}

func init() {
	crawlCmd.Flags().Int("max-pages", 20, "Maximum number of pages to visit")
	crawlCmd.Flags().Int("max-depth", 3, "Maximum link depth from the seed")
	crawlCmd.Flags().StringSlice("keywords", nil, "Keywords for relevance scoring (comma separated)")
	crawlCmd.Flags().String("strategy", config.StrategyBestFirst, "Traversal strategy (best-first or depth-first)")
	crawlCmd.Flags().String("output", "", "Export categorized results to a JSON file")

	rootCmd.AddCommand(crawlCmd)
	rootCmd.PersistentFlags().String("config", "", "Config file path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
