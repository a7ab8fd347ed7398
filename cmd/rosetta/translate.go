package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var translateFlags struct {
	context   string
	languages []string
}

var translateCmd = &cobra.Command{
	Use:   "translate <key> [arg...]",
	Short: "Resolve a text key into a localized string",
	Long: `Resolve a text key plus arguments against the configured lexicon.

Arguments that parse as numbers are passed numerically so they go through
numeric formatting; everything else is passed as text and recursively
translated.

Examples:
  # Simple lookup
  rosetta translate --config config.yaml greeting

  # Lookup with a count argument
  rosetta translate --config config.yaml select.colour 2

  # Override the preference list for one call
  rosetta translate --config config.yaml --language en-AU select.colour 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVar(&translateFlags.context, "context", "", "translation context")
	translateCmd.Flags().StringSliceVar(&translateFlags.languages, "language", nil, "override language preferences")
}

func runTranslate(cmd *cobra.Command, cliArgs []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(translateFlags.languages) > 0 {
		cfg.Languages = translateFlags.languages
	}

	logger, err := setupLogger(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	repo, closeRepo, err := buildRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	eng, _, _, err := buildEngine(cfg, repo, logger)
	if err != nil {
		return err
	}

	key := cliArgs[0]
	args := make([]any, 0, len(cliArgs)-1)
	for _, raw := range cliArgs[1:] {
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			args = append(args, n)
			continue
		}
		args = append(args, raw)
	}

	text, err := eng.ContextTranslate(ctx, translateFlags.context, key, args...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
