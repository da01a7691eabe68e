package cli

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"claims-engine/internal/engine"
	"claims-engine/internal/holiday"
	"claims-engine/internal/model"
)

var calcFlags struct {
	tenantID            string
	eventDate           string
	category            string
	scope               string
	grossNegligence     bool
	stockInboundDate    string
	stockOutboundDate   string
	stockInboundReserve bool
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run a one-shot deadline calculation and print the result JSON",
	Example: `  claims-engine calc --event-date 2026-01-10 --category TERRESTRIAL --scope NATIONAL
  claims-engine calc --event-date 2026-01-01 --category TERRESTRIAL --scope INTERNATIONAL --gross-negligence
  claims-engine calc --event-date 2026-01-01 --category STOCK_IN_TRANSIT --scope NATIONAL \
      --stock-inbound 2026-01-01 --stock-outbound 2026-03-10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cal, err := holiday.NewCalendar(cfg.Holidays)
		if err != nil {
			return err
		}

		req := &model.CalculationRequest{
			TenantID: calcFlags.tenantID,
			Claim: model.ClaimPayload{
				EventDate:           calcFlags.eventDate,
				Category:            calcFlags.category,
				Scope:               calcFlags.scope,
				GrossNegligence:     calcFlags.grossNegligence,
				StockInboundDate:    calcFlags.stockInboundDate,
				StockOutboundDate:   calcFlags.stockOutboundDate,
				StockInboundReserve: calcFlags.stockInboundReserve,
			},
		}

		resp := engine.New(cal).Process(req)

		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
			return fmt.Errorf("calculation failed")
		}
		return nil
	},
}

func init() {
	calcCmd.Flags().StringVar(&calcFlags.tenantID, "tenant", "cli", "tenant identifier for the calculation metadata")
	calcCmd.Flags().StringVar(&calcFlags.eventDate, "event-date", "", "date of loss/delivery (YYYY-MM-DD)")
	calcCmd.Flags().StringVar(&calcFlags.category, "category", "", "claim category: TERRESTRIAL|AIR|MARITIME|STOCK_IN_TRANSIT")
	calcCmd.Flags().StringVar(&calcFlags.scope, "scope", "", "jurisdiction scope: NATIONAL|INTERNATIONAL")
	calcCmd.Flags().BoolVar(&calcFlags.grossNegligence, "gross-negligence", false, "gross negligence modifier (TERRESTRIAL INTERNATIONAL only)")
	calcCmd.Flags().StringVar(&calcFlags.stockInboundDate, "stock-inbound", "", "stock inbound date (YYYY-MM-DD)")
	calcCmd.Flags().StringVar(&calcFlags.stockOutboundDate, "stock-outbound", "", "stock outbound date (YYYY-MM-DD)")
	calcCmd.Flags().BoolVar(&calcFlags.stockInboundReserve, "stock-inbound-reserve", false, "reserve filed at stock inbound")

	_ = calcCmd.MarkFlagRequired("event-date")
	_ = calcCmd.MarkFlagRequired("category")
	_ = calcCmd.MarkFlagRequired("scope")

	rootCmd.AddCommand(calcCmd)
}
