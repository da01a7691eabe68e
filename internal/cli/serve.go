package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"claims-engine/internal/engine"
	"claims-engine/internal/handler"
	"claims-engine/internal/holiday"
	"claims-engine/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the deadline calculation HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		cal, err := holiday.NewCalendar(cfg.Holidays)
		if err != nil {
			return err
		}

		h := handler.New(engine.New(cal), cal, log)

		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("claims engine starting",
			zap.String("addr", addr),
			zap.Int("holidays", len(cfg.Holidays)),
		)
		if err := fasthttp.ListenAndServe(addr, h.Handle); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
