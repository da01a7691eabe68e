package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"claims-engine/internal/dates"
	"claims-engine/internal/holiday"
	"claims-engine/internal/model"
	"claims-engine/internal/rules"
)

// StorageCoverageDays is the standard insurance-coverage window for goods
// held in transit storage. Spans beyond it trigger the SIT warning.
const StorageCoverageDays = 60

// Engine computes legal deadlines for a claim. It is stateless apart from
// the immutable holiday calendar and safe for concurrent use.
type Engine struct {
	cal *holiday.Calendar
}

func New(cal *holiday.Calendar) *Engine {
	if cal == nil {
		cal = holiday.Default()
	}
	return &Engine{cal: cal}
}

// Calculate is the single pure entry point: rule selection, calendar
// arithmetic, decadence flag, and the storage-coverage warning. It never
// reads the clock; everything is anchored to the event date, so identical
// input always yields an identical result. Malformed input is the only
// error surface.
func (e *Engine) Calculate(in model.DeadlineInput) (*model.DeadlineResult, error) {
	if in.EventDate.IsZero() {
		return nil, fmt.Errorf("engine: event date is required")
	}
	if !in.Category.Valid() {
		return nil, fmt.Errorf("engine: unknown claim category %q", in.Category)
	}
	if !in.Scope.Valid() {
		return nil, fmt.Errorf("engine: unknown jurisdiction scope %q", in.Scope)
	}

	rs := rules.Select(in.Category, in.Scope)
	res := &model.DeadlineResult{IsDecadence: rs.IsDecadence}

	if rs.Determined {
		var reserve time.Time
		switch rs.Reserve.Kind {
		case rules.ReserveCalendarDays:
			reserve = dates.AddCalendarDays(in.EventDate, rs.Reserve.Days)
			if rs.Reserve.SundayRollover {
				reserve = dates.RollForwardIfSunday(reserve)
			}
		case rules.ReserveBusinessDays:
			reserve = dates.AddBusinessDays(in.EventDate, rs.Reserve.Days, e.cal)
		}
		if !reserve.IsZero() {
			s := dates.Format(reserve)
			res.ReserveDeadline = &s
		}

		p := dates.Format(prescriptionDate(in, rs.Prescription))
		res.PrescriptionDeadline = &p
	}

	if in.Category == model.CategoryStockInTransit &&
		in.StockInboundDate != nil && in.StockOutboundDate != nil {
		span := dates.DaysBetween(*in.StockInboundDate, *in.StockOutboundDate)
		if span > StorageCoverageDays {
			w := fmt.Sprintf(
				"Giacenza stock in transit di %d gg: superata la finestra di copertura assicurativa standard di %d gg",
				span, StorageCoverageDays,
			)
			res.SITWarning = &w
		}
	}

	return res, nil
}

func prescriptionDate(in model.DeadlineInput, pr rules.PrescriptionRule) time.Time {
	years := pr.Years
	if in.HasGrossNegligence && pr.GrossNegligenceYears > 0 {
		years = pr.GrossNegligenceYears
	}
	t := in.EventDate
	if years > 0 {
		t = dates.AddCalendarYears(t, years)
	}
	if pr.Months > 0 {
		t = dates.AddCalendarMonths(t, pr.Months)
	}
	return t
}

// Process wraps Calculate in the calculation envelope consumed by the HTTP
// surface: boundary validation mapped to CRITICAL messages, advisory
// WARNING messages, and metadata (id, timing, outcome).
func (e *Engine) Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	var msgs []model.CalculationMessage
	var deadlines *model.DeadlineResult
	outcome := model.OutcomeSuccess

	in, parseMsgs := buildInput(&req.Claim)
	if len(parseMsgs) > 0 {
		msgs = append(msgs, parseMsgs...)
		outcome = model.OutcomeFailure
	} else {
		res, err := e.Calculate(*in)
		if err != nil {
			// Unreachable after buildInput, kept as a guard against the two
			// validation layers drifting apart.
			msgs = append(msgs, model.Critical(model.CodeInvalidEventDate, err.Error()))
			outcome = model.OutcomeFailure
		} else {
			deadlines = res
			if in.Category == model.CategoryStockInTransit {
				msgs = append(msgs, model.Warning(model.CodeRuleNotDetermined,
					"Reserve and prescription rules are not determined for STOCK_IN_TRANSIT claims"))
			}
			if res.SITWarning != nil {
				msgs = append(msgs, model.Warning(model.CodeStorageCoverageExceeded, *res.SITWarning))
			}
		}
	}

	for i := range msgs {
		msgs[i].ID = i
	}
	if msgs == nil {
		msgs = []model.CalculationMessage{}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:  msgs,
			Deadlines: deadlines,
		},
	}
}

// buildInput validates the wire-level claim and converts it into a
// DeadlineInput. Invalid required fields produce CRITICAL messages; absent
// optional stock dates are not an error.
func buildInput(c *model.ClaimPayload) (*model.DeadlineInput, []model.CalculationMessage) {
	var msgs []model.CalculationMessage

	eventDate, ok := dates.Parse(c.EventDate)
	if !ok {
		msgs = append(msgs, model.Critical(model.CodeInvalidEventDate,
			fmt.Sprintf("event_date %q is not a valid YYYY-MM-DD date", c.EventDate)))
	}

	category, err := model.ParseCategory(c.Category)
	if err != nil {
		msgs = append(msgs, model.Critical(model.CodeUnknownCategory, err.Error()))
	}

	scope, err := model.ParseScope(c.Scope)
	if err != nil {
		msgs = append(msgs, model.Critical(model.CodeUnknownScope, err.Error()))
	}

	parseStock := func(field, value string) *time.Time {
		if value == "" {
			return nil
		}
		t, ok := dates.Parse(value)
		if !ok {
			msgs = append(msgs, model.Critical(model.CodeInvalidStockDate,
				fmt.Sprintf("%s %q is not a valid YYYY-MM-DD date", field, value)))
			return nil
		}
		return &t
	}
	inbound := parseStock("stock_inbound_date", c.StockInboundDate)
	outbound := parseStock("stock_outbound_date", c.StockOutboundDate)

	if len(msgs) > 0 {
		return nil, msgs
	}

	return &model.DeadlineInput{
		EventDate:              eventDate,
		Category:               category,
		Scope:                  scope,
		HasGrossNegligence:     c.GrossNegligence,
		StockInboundDate:       inbound,
		StockOutboundDate:      outbound,
		HasStockInboundReserve: c.StockInboundReserve,
	}, nil
}
