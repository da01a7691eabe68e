package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"claims-engine/internal/holiday"
)

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "Print the active fixed-holiday set (MM-DD, year-independent)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cal, err := holiday.NewCalendar(cfg.Holidays)
		if err != nil {
			return err
		}
		for _, e := range cal.Entries() {
			fmt.Println(e)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(holidaysCmd)
}
