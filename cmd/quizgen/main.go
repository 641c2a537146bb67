// Command quizgen builds a quiz draft from local documents without a database
// or cache. It prints the draft as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"quiz-forge/internal/adapter/extractor"
	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/quizgen"
	"quiz-forge/internal/util"
)

type draftOutput struct {
	Sources             []string          `json:"sources"`
	Questions           []domain.Question `json:"questions"`
	UsedFallback        bool              `json:"used_fallback"`
	ConceptCount        int               `json:"concept_count"`
	RankedSentenceCount int               `json:"ranked_sentence_count"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes quizgen and returns an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("quizgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("input", "", "comma separated list of documents (.txt, .md, .csv, .pdf, .docx)")
	dir := fs.String("dir", "", "directory whose supported documents are all read")
	seed := fs.Uint64("seed", 0, "random seed; 0 seeds from the clock")
	output := fs.String("output", "-", "output file, - for stdout")
	verbose := fs.Bool("verbose", false, "log per-sentence diagnostics")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := newCLILogger(stderr, *verbose)
	defer log.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 1
	}
	if *seed != 0 {
		cfg.Generator.Seed = *seed
	}

	registry := extractor.NewDefaultRegistry("", log.Named("extractor"))
	sources, err := collectSources(*input, *dir, registry)
	if err != nil {
		fmt.Fprintf(stderr, "input error: %v\n", err)
		return 1
	}
	if len(sources) == 0 {
		fmt.Fprintln(stderr, "no documents given; use -input or -dir")
		fs.Usage()
		return 2
	}

	ctx := context.Background()
	var corpus strings.Builder
	for _, src := range sources {
		text := registry.ExtractText(ctx, src)
		log.Debug("Document extracted", zap.String("path", src), zap.Int("length", len(text)))
		if text != "" {
			corpus.WriteString(text)
			corpus.WriteString("\n")
		}
	}

	generator := quizgen.NewGenerator(
		cfg.Generator.Options(),
		quizgen.WithRandomFactory(cfg.Generator.RandomFactory()),
		quizgen.WithLogger(log.Named("quizgen")),
	)
	draft := generator.Draft(corpus.String())
	for i := range draft.Questions {
		draft.Questions[i].ID = util.NewULID()
	}

	out := draftOutput{
		Sources:             sources,
		Questions:           draft.Questions,
		UsedFallback:        draft.UsedFallback,
		ConceptCount:        draft.ConceptCount,
		RankedSentenceCount: draft.RankedSentenceCount,
	}
	if err := writeDraft(*output, stdout, out); err != nil {
		fmt.Fprintf(stderr, "output error: %v\n", err)
		return 1
	}

	log.Info("Quiz draft written",
		zap.Int("documents", len(sources)),
		zap.Int("question_count", len(draft.Questions)),
		zap.Bool("used_fallback", draft.UsedFallback),
	)
	return 0
}

// collectSources returns absolute document paths: -input entries in the given
// order, then the supported files of -dir sorted by name.
func collectSources(input, dir string, registry *extractor.Registry) ([]string, error) {
	var sources []string
	for _, p := range strings.Split(input, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		sources = append(sources, abs)
	}

	if dir == "" {
		return sources, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var found []string
	for _, e := range entries {
		if e.IsDir() || !registry.Supports(e.Name()) {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		found = append(found, abs)
	}
	sort.Strings(found)
	return append(sources, found...), nil
}

func writeDraft(path string, stdout io.Writer, out draftOutput) error {
	if path == "-" || path == "" {
		return encodeDraft(stdout, out)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeDraft(f, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeDraft(w io.Writer, out draftOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return nil
}

// newCLILogger logs to stderr so stdout stays valid JSON.
func newCLILogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level))
}
