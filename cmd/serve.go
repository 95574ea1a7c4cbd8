package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/supacheck/pkg/config"
	"github.com/user/supacheck/pkg/dashboard"
	"github.com/user/supacheck/pkg/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser dashboard",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			ui.PrintError("Error loading config", err)
			os.Exit(1)
		}

		creds := cfg.Credentials()
		if err := creds.Validate(); err != nil {
			ui.PrintError("Missing credentials", err)
			fmt.Println("Configure credentials with 'supacheck config setup' before serving the dashboard.")
			os.Exit(1)
		}

		addr, _ := cmd.Flags().GetString("addr")
		ui.PrintBanner()
		ui.PrintProgress(fmt.Sprintf("Dashboard listening on http://localhost%s", addr))

		srv := dashboard.NewServer(creds)
		if err := srv.ListenAndServe(addr); err != nil {
			ui.PrintError("Server error", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address for the dashboard")
	rootCmd.AddCommand(serveCmd)
}
