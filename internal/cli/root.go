package cli

import (
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "naradamuni",
	Short: "Flood detection sensor to Prometheus bridge",
	Long: `naradamuni receives readings pushed by a flood detection device over HTTP,
keeps the latest one in memory and serves it to Prometheus on /metrics.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every accepted reading")
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPushCmd())
}
