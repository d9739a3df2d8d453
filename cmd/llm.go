package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/anirudh/studyloop/internal/llm"
	"github.com/anirudh/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show LLM provider status and usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
			} else {
				fmt.Println("Provider:  (not configured)")
				fmt.Println()
				fmt.Println("Set STUDYLOOP_LLM_PROVIDER and the matching API key,")
				fmt.Println("or export ANTHROPIC_API_KEY / OPENAI_API_KEY / GEMINI_API_KEY.")
				return nil
			}
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", providerModel(cfg))

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		usage, err := st.EventRepo().LLMTotals(context.Background())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		fmt.Println()
		fmt.Println("Usage")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Requests:       %d\n", usage.Requests)
		fmt.Printf("Failures:       %d\n", usage.Failures)
		fmt.Printf("Input tokens:   %d\n", usage.InputTokens)
		fmt.Printf("Output tokens:  %d\n", usage.OutputTokens)
		return nil
	},
}

func providerModel(cfg llm.Config) string {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.Model
	case "openai", "openrouter":
		return cfg.OpenAI.Model
	case "gemini":
		return cfg.Gemini.Model
	}
	return "?"
}
