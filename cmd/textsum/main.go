package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"textsum/internal/config"
	"textsum/internal/language"
	"textsum/internal/nlp"
	"textsum/internal/service"
	"textsum/internal/summarizer"
	"textsum/internal/tui"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	warnColor   = color.New(color.FgYellow).SprintFunc()
	scoreColor  = color.New(color.FgGreen).SprintFunc()
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath string
		n       int
		lang    string
		useTUI  bool
		outPath string
		explain bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/textsum/config.yaml if not provided)")
	flag.IntVar(&n, "n", 0, "Number of sentences in the summary (default from config)")
	flag.StringVar(&lang, "lang", "", "Summary language: english, portuguese (default from config)")
	flag.BoolVar(&useTUI, "tui", false, "Start the interactive interface")
	flag.StringVar(&outPath, "out", "", "Write the summary to this file")
	flag.BoolVar(&explain, "explain", false, "Print sentence scores and keyword weights")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 && !useTUI {
		fmt.Println("Usage: textsum [--config=config.yaml] [--n=5] [--lang=english] [--out=summary.txt] [--explain] file1.txt [file2.html ...|-]")
		fmt.Println("       textsum --tui [file.txt]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if n != 0 {
		cfg.Summarizer.Sentences = n
	}
	if lang != "" {
		cfg.Summarizer.Language = lang
	}
	if outPath != "" {
		cfg.Service.Output = outPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, closeLog, err := newLogger(cfg.Log, useTUI)
	if err != nil {
		log.Fatalf("failed to open log: %v", err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	code, err := language.Parse(cfg.Summarizer.Language)
	if err != nil {
		log.Fatalf("invalid language: %v", err)
	}

	analyzer, err := nlp.New(nlp.Config{Segmenter: nlp.Segmenter(cfg.Analyzer.Segmenter)})
	if err != nil {
		logger.Error("Failed to initialize analyzer",
			"error", err,
			"segmenter", cfg.Analyzer.Segmenter)
		os.Exit(1)
	}
	logger.Debug("Analyzer is initialized",
		"segmenter", cfg.Analyzer.Segmenter,
		"stopwords", cfg.Analyzer.StopWords)

	sum := summarizer.New(analyzer, summarizer.Options{
		StopWords: language.StopWordSource(cfg.Analyzer.StopWords),
		Logger:    logger,
	})
	svc := service.New(sum, service.Options{CacheSize: cfg.Service.CacheSize, Logger: logger})

	if useTUI {
		runTUI(svc, cfg, code, inputs, logger)
		return
	}

	results, err := svc.SummarizeFiles(inputs, cfg.Summarizer.Sentences, code, explain)
	if err != nil {
		logger.Error("Failed to summarize",
			"error", err,
			"inputs", len(inputs))
		os.Exit(1)
	}

	summaries := make([]string, 0, len(results))
	for _, r := range results {
		if len(results) > 1 || explain {
			fmt.Println(headerColor("== " + r.Path))
		}
		if r.Analysis != nil {
			printAnalysis(os.Stdout, r.Analysis)
		}
		if r.Summary == "" {
			fmt.Println(warnColor("(no keywords found, summary is empty)"))
		} else {
			fmt.Println(r.Summary)
		}
		summaries = append(summaries, r.Summary)
	}

	if outPath != "" {
		if err := svc.Export(cfg.Service.Output, strings.Join(summaries, "\n\n")); err != nil {
			logger.Error("Failed to export summary",
				"error", err,
				"path", cfg.Service.Output)
			os.Exit(1)
		}
	}
}

func runTUI(svc *service.Service, cfg *config.AppConfig, code language.Code, inputs []string, logger *slog.Logger) {
	var text string
	if len(inputs) > 0 {
		docs, err := svc.LoadDocuments(inputs)
		if err != nil {
			logger.Error("Failed to load documents",
				"error", err)
			os.Exit(1)
		}
		text = docs[0].Content
	}
	m := tui.New(svc, tui.Settings{
		Text:       text,
		Sentences:  cfg.Summarizer.Sentences,
		Language:   code,
		OutputPath: cfg.Service.Output,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

const topKeywords = 10

func printAnalysis(w io.Writer, a *summarizer.Analysis) {
	selected := make(map[int]bool, len(a.Selected))
	for _, s := range a.Selected {
		selected[s.Sentence.Index] = true
	}
	fmt.Fprintln(w, headerColor("Sentences"))
	for _, s := range a.Sentences {
		mark := " "
		if selected[s.Sentence.Index] {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %3d  %s  %s\n", mark, s.Sentence.Index, scoreColor(fmt.Sprintf("%7.3f", s.Score)), s.Sentence.Text)
	}
	fmt.Fprintln(w, headerColor("Keywords"))
	for i, k := range a.Keywords {
		if i == topKeywords {
			break
		}
		fmt.Fprintf(w, "  %-20s %.3f\n", k.Word, k.Weight)
	}
	fmt.Fprintln(w, headerColor("Summary"))
}

// newLogger builds the slog handler. The TUI owns the terminal, so its logs
// go to the configured file or nowhere.
func newLogger(cfg config.LogConfig, tuiMode bool) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case tuiMode:
		w = io.Discard
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), closeFn, nil
}
