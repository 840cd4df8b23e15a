package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/semflow/internal/compose"
	"github.com/ppiankov/semflow/internal/gloss"
	"github.com/ppiankov/semflow/internal/model"
	"github.com/ppiankov/semflow/internal/verbclass"
)

var (
	dataDir      string
	threshold    float32
	maxEvents    int
	outFormat    string
	outPath      string
	noCache      bool
	watchData    bool
	glossEnabled bool
	glossModel   string
)

// composeCmd represents the compose command
var composeCmd = &cobra.Command{
	Use:   "compose <analysis-file>",
	Short: "Compose events from one parsed sentence",
	Long: `Compose reads a sentence analysis (tokens, lemmas, POS tags and
dependency arcs) from a YAML or JSON file and emits the composed event
structure: primitive operators, theta-role bindings, aspect, voice and
confidence.

Example:
  semflow compose sentence.yaml
  semflow compose sentence.yaml --data ./classes --threshold 0.3
  semflow compose sentence.json --format json --gloss`,
	Args: cobra.ExactArgs(1),
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)

	composeCmd.Flags().StringVar(&dataDir, "data", "", "verb class data directory (default: built-in inventory)")
	composeCmd.Flags().Float32Var(&threshold, "threshold", 0.2, "minimum event confidence")
	composeCmd.Flags().IntVar(&maxEvents, "max-events", 5, "maximum events per sentence")
	composeCmd.Flags().StringVar(&outFormat, "format", "yaml", "output format (yaml, json)")
	composeCmd.Flags().StringVar(&outPath, "out", "", "output path (default: stdout)")
	composeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the verb class lookup cache")
	composeCmd.Flags().BoolVar(&watchData, "watch", false, "hot-reload the verb class data directory on changes")

	composeCmd.Flags().BoolVar(&glossEnabled, "gloss", false, "generate an LLM paraphrase of the result")
	composeCmd.Flags().StringVar(&glossModel, "gloss-model", "gpt-4o-mini", "gloss model name")
}

// composeOutput is the rendered result, optionally with a gloss
type composeOutput struct {
	model.ComposedEvents `yaml:",inline"`
	Gloss                string `yaml:"gloss,omitempty" json:"gloss,omitempty"`
}

func runCompose(cmd *cobra.Command, args []string) error {
	analysis, err := loadAnalysis(args[0])
	if err != nil {
		return err
	}

	cfg := buildConfig()
	analyzer, err := buildAnalyzer(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	composer := compose.NewComposer(analyzer, cfg.Compose)
	events, err := composer.ComposeSentence(analysis)
	if err != nil {
		return fmt.Errorf("compose failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Composed %d events (%d unbound) in %dus\n",
			len(events.Events), len(events.UnboundEntities), events.ProcessingTimeUs)
	}

	out := composeOutput{ComposedEvents: *events}
	if glossEnabled {
		out.Gloss, err = generateGloss(cmd.Context(), cfg, events)
		if err != nil {
			return err
		}
	}

	return render(out, outFormat, outPath)
}

// buildConfig assembles configuration from defaults and flags
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Data.ClassDir = dataDir
	cfg.Data.Watch = watchData
	cfg.Data.CacheEnabled = !noCache
	cfg.Compose.ConfidenceThreshold = threshold
	cfg.Compose.MaxEventsPerSentence = maxEvents
	cfg.Output.Format = outFormat
	cfg.Output.Verbose = verbose
	return cfg
}

// buildAnalyzer wires the verb class store, the optional lookup cache
// and, when configured, the hot-reload watcher tied to the command's
// lifetime
func buildAnalyzer(ctx context.Context, cfg *model.Config) (verbclass.Analyzer, error) {
	store, err := verbclass.NewStore(cfg.Data.ClassDir)
	if err != nil {
		return nil, fmt.Errorf("load verb classes: %w", err)
	}

	var analyzer verbclass.Analyzer = store
	if cfg.Data.CacheEnabled {
		cached := verbclass.NewCachedAnalyzer(store, cfg.Data.CacheTTL, cfg.Data.CacheCleanup)
		store.OnSwap = func(*verbclass.Index) { cached.Flush() }
		analyzer = cached
	}

	if cfg.Data.Watch && cfg.Data.ClassDir != "" {
		if verbose {
			fmt.Fprintf(os.Stderr, "Watching %s for verb class changes\n", cfg.Data.ClassDir)
		}
		go func() {
			if err := store.Watch(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "verb class watcher: %v\n", err)
			}
		}()
	}
	return analyzer, nil
}

// generateGloss runs the optional LLM paraphrase
func generateGloss(ctx context.Context, cfg *model.Config, events *model.ComposedEvents) (string, error) {
	cfg.LLM.Provider = "openai"
	cfg.LLM.Model = glossModel
	cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.LLM.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	provider, err := gloss.NewProvider(gloss.ConfigFromModel(cfg.LLM))
	if err != nil {
		return "", err
	}

	resp, err := provider.Paraphrase(ctx, gloss.Request{Events: events})
	if err != nil {
		return "", fmt.Errorf("gloss failed: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Gloss generated by %s (%d tokens)\n", resp.Model, resp.TokensUsed)
	}
	return resp.Gloss, nil
}

// loadAnalysis reads one sentence analysis from a YAML or JSON file
func loadAnalysis(path string) (*model.SentenceAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read analysis: %w", err)
	}
	var analysis model.SentenceAnalysis
	if err := unmarshalByExt(path, data, &analysis); err != nil {
		return nil, fmt.Errorf("parse analysis %s: %w", path, err)
	}
	return &analysis, nil
}

func unmarshalByExt(path string, data []byte, v interface{}) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

// render writes the result as YAML or JSON to a file or stdout
func render(v interface{}, format, path string) error {
	var data []byte
	var err error
	switch strings.ToLower(format) {
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml", "":
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unknown output format: %s (supported: yaml, json)", format)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}
	return nil
}
