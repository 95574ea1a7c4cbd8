package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/supacheck/pkg/adk"
	"github.com/user/supacheck/pkg/checks"
	"github.com/user/supacheck/pkg/config"
	"github.com/user/supacheck/pkg/evidence"
	"github.com/user/supacheck/pkg/wrappers"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start the interactive assistant session",
	Run: func(cmd *cobra.Command, args []string) {
		adk.DebugEnabled = DebugMode

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		providerName := cfg.SelectedProvider
		if providerName == "" {
			providerName = "gemini" // Default
		}

		apiKey := cfg.GetAPIKey(providerName)
		if apiKey == "" {
			// Fallback to env var for Gemini if not in config
			if providerName == "gemini" {
				apiKey = os.Getenv("GOOGLE_API_KEY")
			}
		}

		if apiKey == "" {
			fmt.Println("Error: API Key not found.")
			fmt.Println("Please run 'supacheck config setup' to configure your keys.")
			return
		}

		ctx := context.Background()
		modelName := cfg.SelectedModel
		fmt.Printf("Connecting to %s (Model: %s)...\n", providerName, modelName)

		provider, err := adk.NewProvider(ctx, providerName, apiKey, modelName)
		if err != nil {
			fmt.Printf("Error creating AI provider: %v\n", err)
			return
		}
		if closer, ok := provider.(interface{ Close() }); ok {
			defer closer.Close()
		}

		agent := adk.NewAgent(provider)

		// One runner and one evidence log for the whole session.
		runner := checks.NewRunner()
		log := evidence.NewLog()
		creds := cfg.Credentials()

		agent.RegisterTool(&wrappers.RunChecksWrapper{Runner: runner, Log: log, Credentials: creds})
		agent.RegisterTool(&wrappers.ShowEvidenceWrapper{Log: log})
		agent.RegisterTool(&wrappers.ExportEvidenceWrapper{Log: log})
		agent.RegisterTool(&wrappers.RemediationWrapper{})

		agent.SetSystemPrompt(adk.GetSystemPrompt())

		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("\n---------------------------------------------------------")
		fmt.Println("supacheck Assistant Initialized. Ready for commands.")
		fmt.Println("Example: 'Run the security checks'")
		fmt.Println("Example: 'Why is my RLS check failing?'")
		fmt.Println("Type 'quit' or 'exit' to stop.")
		fmt.Println("---------------------------------------------------------")

		for {
			fmt.Print("\n> ")
			if !scanner.Scan() {
				break
			}
			input := scanner.Text()
			if input == "quit" || input == "exit" {
				break
			}
			if input == "" {
				continue
			}

			fmt.Print("Assistant thinking... ")
			resp, err := agent.Chat(ctx, input, func(msg string) {
				fmt.Printf("\r\033[K[Progress]: %s\nAssistant thinking... ", msg)
			})
			fmt.Print("\r\033[K")

			if err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				fmt.Printf("\n[Assistant]: %s\n", resp)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
