package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/user/supacheck/pkg/adk"
	"github.com/user/supacheck/pkg/config"
	"github.com/user/supacheck/pkg/supabase"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard",
	Run: func(cmd *cobra.Command, args []string) {
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("Welcome to supacheck Setup Wizard")
		fmt.Println("---------------------------------")

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		// 1. Supabase credentials
		fmt.Println("Step 1: Supabase project credentials")
		fmt.Print("Project URL (https://<ref>.supabase.co) > ")
		scanner.Scan()
		cfg.Supabase.URL = strings.TrimSpace(scanner.Text())

		if _, err := (supabase.Credentials{EndpointURL: cfg.Supabase.URL}).ResolveProjectRef(); err != nil {
			fmt.Println("Could not derive the project ref from that URL.")
			fmt.Print("Project ref > ")
			scanner.Scan()
			cfg.Supabase.ProjectRef = strings.TrimSpace(scanner.Text())
		}

		fmt.Print("service_role key > ")
		scanner.Scan()
		cfg.Supabase.ServiceKey = strings.TrimSpace(scanner.Text())

		fmt.Print("Management access token > ")
		scanner.Scan()
		cfg.Supabase.AccessToken = strings.TrimSpace(scanner.Text())

		// 2. Select AI provider for the assistant (optional)
		fmt.Println("\nStep 2: Assistant AI provider (press Enter to skip)")
		fmt.Println("1. Gemini (Google)")
		fmt.Println("2. OpenAI")
		fmt.Println("3. Anthropic")
		fmt.Print("Enter number or name > ")
		scanner.Scan()
		choice := strings.ToLower(strings.TrimSpace(scanner.Text()))

		var provider string
		switch choice {
		case "":
			// Skip assistant setup, save what we have.
			if err := config.SaveConfig(cfg); err != nil {
				fmt.Printf("Error saving config: %v\n", err)
				return
			}
			fmt.Println("\nSupabase credentials saved. Run 'supacheck check' to start.")
			return
		case "1", "gemini":
			provider = "gemini"
		case "2", "openai":
			provider = "openai"
		case "3", "anthropic":
			provider = "anthropic"
		default:
			fmt.Println("Invalid choice. Aborting.")
			return
		}

		// 3. Enter API Key
		fmt.Printf("\nStep 3: Enter API Key for %s\n", provider)
		fmt.Print("> ")
		scanner.Scan()
		apiKey := strings.TrimSpace(scanner.Text())
		if apiKey == "" {
			fmt.Println("API Key cannot be empty.")
			return
		}

		// 4. Fetch Models
		fmt.Println("\nStep 4: Validating key and fetching available models...")
		ctx := context.Background()

		tempProvider, err := adk.NewProvider(ctx, provider, apiKey, "")
		if err != nil {
			fmt.Printf("Error initializing provider: %v\n", err)
			return
		}

		models, err := tempProvider.ListModels(ctx)
		var selectedModel string

		if err != nil {
			fmt.Printf("Warning: Could not fetch models from API: %v\n", err)
			fmt.Println("Please enter model name manually (e.g., 'gemini-pro', 'gpt-4'):")
			fmt.Print("> ")
			scanner.Scan()
			selectedModel = strings.TrimSpace(scanner.Text())
		} else {
			fmt.Printf("Successfully retrieved %d models.\n", len(models))
			for i, m := range models {
				fmt.Printf("%d. %s\n", i+1, m)
			}
			fmt.Print("Select Model (number) > ")
			scanner.Scan()
			selStr := strings.TrimSpace(scanner.Text())
			selIdx, err := strconv.Atoi(selStr)
			if err != nil || selIdx < 1 || selIdx > len(models) {
				fmt.Println("Invalid selection. Using first available model.")
				selectedModel = models[0]
			} else {
				selectedModel = models[selIdx-1]
			}
		}

		// 5. Save Configuration
		fmt.Println("\nStep 5: Saving Configuration...")
		cfg.SelectedProvider = provider
		cfg.SelectedModel = selectedModel
		cfg.SetAPIKey(provider, apiKey)

		if err := config.SaveConfig(cfg); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			return
		}

		fmt.Println("---------------------------------")
		fmt.Println("Setup Complete!")
		fmt.Printf("Provider: %s\n", provider)
		fmt.Printf("Model:    %s\n", selectedModel)
		fmt.Println("You can now run 'supacheck check' or 'supacheck interactive'")
	},
}

func init() {
	configCmd.AddCommand(setupCmd)
}
