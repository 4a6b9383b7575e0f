package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/initializ/rulekit/config"
	"github.com/initializ/rulekit/eval"
	"github.com/initializ/rulekit/llm"
	"github.com/initializ/rulekit/llm/providers"
)

var (
	evalNoComparison bool
	evalResultsFile  string
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the fine-tuned rules model against the eval suite",
	Long:  "Eval sends every suite question to the configured model, scores responses by keyword matching, and compares against the base model unless --no-comparison is set.",
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().BoolVar(&evalNoComparison, "no-comparison", false, "skip the base model comparison run")
	evalCmd.Flags().StringVar(&evalResultsFile, "results", "eval-results.json", "write full results JSON to this file (empty to skip)")
}

func runEval(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.LoadConfig(filepath.Join(wd, cfgFile))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Eval.Provider == "" || cfg.Eval.Model == "" {
		return fmt.Errorf("eval requires eval.provider and eval.model in %s", cfgFile)
	}

	suite, err := eval.LoadSuite(filepath.Join(wd, cfg.SuitePath()))
	if err != nil {
		return err
	}

	apiKey := os.Getenv("RULEKIT_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	candidate, err := providers.NewClient(cfg.Eval.Provider, llm.Endpoint{
		APIKey:  apiKey,
		BaseURL: cfg.Eval.BaseURL,
		Model:   cfg.Eval.Model,
	})
	if err != nil {
		return err
	}

	runner := &eval.Runner{Candidate: candidate}

	if !evalNoComparison {
		if cfg.Eval.BaseModel == "" {
			fmt.Fprintln(os.Stderr, "WARNING: eval.base_model not set, skipping comparison")
		} else {
			baseURL := cfg.Eval.BaseBaseURL
			if baseURL == "" {
				baseURL = cfg.Eval.BaseURL
			}
			base, err := providers.NewClient(cfg.Eval.Provider, llm.Endpoint{
				APIKey:  apiKey,
				BaseURL: baseURL,
				Model:   cfg.Eval.BaseModel,
			})
			if err != nil {
				return err
			}
			runner.Base = base
		}
	}

	fmt.Printf("Evaluating %s on %d test case(s)...\n", cfg.Eval.Model, len(suite.Cases))
	res, err := runner.Run(cmd.Context(), suite)
	if err != nil {
		return err
	}

	eval.PrintReport(os.Stdout, res)

	if evalResultsFile != "" {
		if err := eval.SaveResults(evalResultsFile, res); err != nil {
			return err
		}
		fmt.Printf("\nResults saved to %s\n", evalResultsFile)
	}
	return nil
}
