// Package cli wires the cobra command surface: a server, a one-shot
// calculation command, and inspection helpers.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"claims-engine/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "claims-engine",
	Short: "Legal deadline calculation engine for transport claims",
	Long: `claims-engine computes the legal deadlines attached to a transport or
storage claim: the reserve (formal objection) deadline, the prescription or
decadence deadline, and the stock-in-transit storage-coverage warning.

Rules depend on the claim category (TERRESTRIAL, AIR, MARITIME,
STOCK_IN_TRANSIT) and the jurisdictional scope (NATIONAL, INTERNATIONAL);
business-day counting skips Sundays and fixed national holidays but counts
Saturdays.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("claims-engine v1.0.0")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML; default: env vars and built-in defaults)")
	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
