package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "supacheck",
	Short: "Supabase security compliance checker",
	Long: `supacheck evaluates the security posture of a Supabase project:
MFA coverage across auth users, Row Level Security on every table, and
Point-in-Time Recovery configuration. Results are normalized to
pass/fail/error and recorded in an exportable evidence log.`,
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
}
