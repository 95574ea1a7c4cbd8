package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/user/supacheck/pkg/checks"
	"github.com/user/supacheck/pkg/config"
	"github.com/user/supacheck/pkg/evidence"
	"github.com/user/supacheck/pkg/report"
	"github.com/user/supacheck/pkg/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the security compliance checks once and print the results",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			ui.PrintError("Error loading config", err)
			os.Exit(1)
		}

		creds := cfg.Credentials()
		if v, _ := cmd.Flags().GetString("url"); v != "" {
			creds.EndpointURL = v
		}
		if v, _ := cmd.Flags().GetString("service-key"); v != "" {
			creds.ServiceKey = v
		}
		if v, _ := cmd.Flags().GetString("access-token"); v != "" {
			creds.ManagementKey = v
		}
		if v, _ := cmd.Flags().GetString("project-ref"); v != "" {
			creds.ProjectRef = v
		}

		ui.PrintBanner()
		ui.PrintProgress("Running checks...")

		runner := checks.NewRunner()
		results, entries, err := runner.RunAll(context.Background(), creds)
		if err != nil {
			ui.PrintError("Cannot run checks", err)
			fmt.Println("Configure credentials with 'supacheck config setup' or pass --url / --service-key / --access-token.")
			os.Exit(1)
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "json" {
			data, err := (&report.JSONFormatter{}).Format(results)
			if err != nil {
				ui.PrintError("Error formatting results", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
		} else {
			ui.PrintCheck("MFA coverage", string(results.MFA.Status), results.MFA.Message)
			ui.PrintCheck("Row Level Security", string(results.RLS.Status), results.RLS.Message)
			ui.PrintCheck("Point-in-Time Recovery", string(results.PITR.Status), results.PITR.Message)
		}

		if out, _ := cmd.Flags().GetString("evidence-out"); out != "" {
			log := evidence.NewLog()
			log.Append(entries...)
			var data []byte
			if strings.HasSuffix(out, ".csv") {
				data, err = log.ExportCSV()
			} else {
				data, err = log.ExportJSON()
			}
			if err == nil {
				err = os.WriteFile(out, data, 0644)
			}
			if err != nil {
				ui.PrintError("Error writing evidence file", err)
				os.Exit(1)
			}
			fmt.Printf("Evidence written to %s\n", out)
		}

		if results.MFA.Status == checks.StatusFail || results.RLS.Status == checks.StatusFail || results.PITR.Status == checks.StatusFail {
			os.Exit(2)
		}
	},
}

func init() {
	checkCmd.Flags().String("url", "", "Project endpoint URL (https://<ref>.supabase.co)")
	checkCmd.Flags().String("service-key", "", "Data-plane service_role key")
	checkCmd.Flags().String("access-token", "", "Management API access token")
	checkCmd.Flags().String("project-ref", "", "Project ref (derived from the URL when omitted)")
	checkCmd.Flags().StringP("output", "o", "text", "Output format: text or json")
	checkCmd.Flags().String("evidence-out", "", "Write the run's evidence entries to this file (.json or .csv)")
	rootCmd.AddCommand(checkCmd)
}
