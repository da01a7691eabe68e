package engine

import (
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"claims-engine/internal/model"
)

func newEngine() *Engine {
	return New(nil)
}

func process(t *testing.T, claim model.ClaimPayload) *model.CalculationResponse {
	t.Helper()
	return newEngine().Process(&model.CalculationRequest{
		TenantID: "test-tenant",
		Claim:    claim,
	})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTerrestrialNationalSundayRollover(t *testing.T) {
	// 2026-01-10 is a Saturday; +8 calendar days lands on Sunday 2026-01-18
	// and rolls to Monday.
	resp := process(t, model.ClaimPayload{
		EventDate: "2026-01-10",
		Category:  "TERRESTRIAL",
		Scope:     "NATIONAL",
	})

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationMetadata.TenantID != "test-tenant" {
		t.Fatalf("expected tenant_id test-tenant, got %s", resp.CalculationMetadata.TenantID)
	}
	if len(resp.CalculationResult.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.CalculationResult.Messages))
	}

	dl := resp.CalculationResult.Deadlines
	if dl == nil {
		t.Fatal("expected deadlines")
	}
	if dl.ReserveDeadline == nil || *dl.ReserveDeadline != "2026-01-19" {
		t.Fatalf("expected reserve_deadline 2026-01-19, got %v", dl.ReserveDeadline)
	}
	if dl.PrescriptionDeadline == nil || *dl.PrescriptionDeadline != "2027-01-10" {
		t.Fatalf("expected prescription_deadline 2027-01-10, got %v", dl.PrescriptionDeadline)
	}
	if dl.IsDecadence {
		t.Fatal("expected is_decadence false")
	}
	if dl.SITWarning != nil {
		t.Fatalf("expected no sit_warning, got %q", *dl.SITWarning)
	}
}

func TestTerrestrialInternationalBusinessDays(t *testing.T) {
	// 2026-01-01 Thursday + 7 business days: Sunday the 4th and Epiphany the
	// 6th are skipped, Saturdays the 3rd and 10th count.
	resp := process(t, model.ClaimPayload{
		EventDate: "2026-01-01",
		Category:  "TERRESTRIAL",
		Scope:     "INTERNATIONAL",
	})

	dl := resp.CalculationResult.Deadlines
	if dl == nil {
		t.Fatal("expected deadlines")
	}
	if dl.ReserveDeadline == nil || *dl.ReserveDeadline != "2026-01-10" {
		t.Fatalf("expected reserve_deadline 2026-01-10, got %v", dl.ReserveDeadline)
	}
	if dl.PrescriptionDeadline == nil || *dl.PrescriptionDeadline != "2027-01-01" {
		t.Fatalf("expected prescription_deadline 2027-01-01, got %v", dl.PrescriptionDeadline)
	}
}

func TestGrossNegligenceExtendsPrescription(t *testing.T) {
	resp := process(t, model.ClaimPayload{
		EventDate:       "2026-01-01",
		Category:        "TERRESTRIAL",
		Scope:           "INTERNATIONAL",
		GrossNegligence: true,
	})

	dl := resp.CalculationResult.Deadlines
	if dl.PrescriptionDeadline == nil || *dl.PrescriptionDeadline != "2029-01-01" {
		t.Fatalf("expected prescription_deadline 2029-01-01, got %v", dl.PrescriptionDeadline)
	}
	// Reserve counting is unchanged by the modifier.
	if dl.ReserveDeadline == nil || *dl.ReserveDeadline != "2026-01-10" {
		t.Fatalf("expected reserve_deadline 2026-01-10, got %v", dl.ReserveDeadline)
	}
}

func TestGrossNegligenceIgnoredOutsideInternationalRoad(t *testing.T) {
	resp := process(t, model.ClaimPayload{
		EventDate:       "2026-01-10",
		Category:        "TERRESTRIAL",
		Scope:           "NATIONAL",
		GrossNegligence: true,
	})

	dl := resp.CalculationResult.Deadlines
	if dl.PrescriptionDeadline == nil || *dl.PrescriptionDeadline != "2027-01-10" {
		t.Fatalf("expected prescription_deadline 2027-01-10, got %v", dl.PrescriptionDeadline)
	}
}

func TestAirDecadence(t *testing.T) {
	resp := process(t, model.ClaimPayload{
		EventDate: "2026-01-01",
		Category:  "AIR",
		Scope:     "INTERNATIONAL",
	})

	dl := resp.CalculationResult.Deadlines
	if dl.ReserveDeadline == nil || *dl.ReserveDeadline != "2026-01-15" {
		t.Fatalf("expected reserve_deadline 2026-01-15, got %v", dl.ReserveDeadline)
	}
	if dl.PrescriptionDeadline == nil || *dl.PrescriptionDeadline != "2028-01-01" {
		t.Fatalf("expected prescription_deadline 2028-01-01, got %v", dl.PrescriptionDeadline)
	}
	if !dl.IsDecadence {
		t.Fatal("expected is_decadence true for AIR")
	}
}

func TestMaritimeSixMonths(t *testing.T) {
	resp := process(t, model.ClaimPayload{
		EventDate: "2026-01-01",
		Category:  "MARITIME",
		Scope:     "NATIONAL",
	})

	dl := resp.CalculationResult.Deadlines
	// +3 calendar days lands on Sunday 2026-01-04; maritime has no rollover.
	if dl.ReserveDeadline == nil || *dl.ReserveDeadline != "2026-01-04" {
		t.Fatalf("expected reserve_deadline 2026-01-04, got %v", dl.ReserveDeadline)
	}
	if dl.PrescriptionDeadline == nil || *dl.PrescriptionDeadline != "2026-07-01" {
		t.Fatalf("expected prescription_deadline 2026-07-01, got %v", dl.PrescriptionDeadline)
	}
	if dl.IsDecadence {
		t.Fatal("expected is_decadence false for MARITIME")
	}
}

func TestStockInTransitStorageWarning(t *testing.T) {
	resp := process(t, model.ClaimPayload{
		EventDate:         "2026-01-01",
		Category:          "STOCK_IN_TRANSIT",
		Scope:             "NATIONAL",
		StockInboundDate:  "2026-01-01",
		StockOutboundDate: "2026-03-10",
	})

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	dl := resp.CalculationResult.Deadlines
	if dl == nil {
		t.Fatal("expected deadlines")
	}
	if dl.ReserveDeadline != nil || dl.PrescriptionDeadline != nil {
		t.Fatalf("expected undetermined deadlines, got reserve=%v prescription=%v",
			dl.ReserveDeadline, dl.PrescriptionDeadline)
	}
	if dl.SITWarning == nil {
		t.Fatal("expected sit_warning")
	}
	if !strings.Contains(*dl.SITWarning, "68 gg") {
		t.Fatalf("expected sit_warning to contain %q, got %q", "68 gg", *dl.SITWarning)
	}

	var ruleMsg, storageMsg *model.CalculationMessage
	for i := range resp.CalculationResult.Messages {
		m := &resp.CalculationResult.Messages[i]
		switch m.Code {
		case "RULE_NOT_DETERMINED":
			ruleMsg = m
		case "STORAGE_COVERAGE_EXCEEDED":
			storageMsg = m
		}
	}
	if ruleMsg == nil || ruleMsg.Level != "WARNING" {
		t.Fatal("expected RULE_NOT_DETERMINED warning")
	}
	if storageMsg == nil || storageMsg.Level != "WARNING" {
		t.Fatal("expected STORAGE_COVERAGE_EXCEEDED warning")
	}
	if !strings.Contains(storageMsg.Message, "68 gg") {
		t.Fatalf("expected storage message to contain %q, got %q", "68 gg", storageMsg.Message)
	}
}

func TestStockInTransitWithinCoverageWindow(t *testing.T) {
	// Exactly 60 days: the threshold is strict.
	resp := process(t, model.ClaimPayload{
		EventDate:         "2026-01-01",
		Category:          "STOCK_IN_TRANSIT",
		Scope:             "NATIONAL",
		StockInboundDate:  "2026-01-01",
		StockOutboundDate: "2026-03-02",
	})

	if resp.CalculationResult.Deadlines.SITWarning != nil {
		t.Fatalf("expected no sit_warning at 60 days, got %q", *resp.CalculationResult.Deadlines.SITWarning)
	}
	for _, m := range resp.CalculationResult.Messages {
		if m.Code == "STORAGE_COVERAGE_EXCEEDED" {
			t.Fatal("unexpected STORAGE_COVERAGE_EXCEEDED message")
		}
	}
}

func TestStockInTransitWithoutDates(t *testing.T) {
	resp := process(t, model.ClaimPayload{
		EventDate: "2026-01-01",
		Category:  "STOCK_IN_TRANSIT",
		Scope:     "INTERNATIONAL",
	})

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Deadlines.SITWarning != nil {
		t.Fatal("expected no sit_warning without stock dates")
	}
}

func TestSundayRolloverOntoHolidayMondayStaysMonday(t *testing.T) {
	// 2025-11-29 + 8 calendar days = Sunday 2025-12-07; the single-step
	// rollover lands on Monday 2025-12-08 (Immaculate Conception) and stays
	// there.
	resp := process(t, model.ClaimPayload{
		EventDate: "2025-11-29",
		Category:  "TERRESTRIAL",
		Scope:     "NATIONAL",
	})

	dl := resp.CalculationResult.Deadlines
	if dl.ReserveDeadline == nil || *dl.ReserveDeadline != "2025-12-08" {
		t.Fatalf("expected reserve_deadline 2025-12-08, got %v", dl.ReserveDeadline)
	}
}

func TestInvalidInputProducesCriticalMessages(t *testing.T) {
	resp := process(t, model.ClaimPayload{
		EventDate: "not-a-date",
		Category:  "RAIL",
		Scope:     "REGIONAL",
	})

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Deadlines != nil {
		t.Fatal("expected no deadlines on failure")
	}

	msgs := resp.CalculationResult.Messages
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	wantCodes := []string{"INVALID_EVENT_DATE", "UNKNOWN_CATEGORY", "UNKNOWN_SCOPE"}
	for i, code := range wantCodes {
		if msgs[i].ID != i {
			t.Fatalf("expected message id %d, got %d", i, msgs[i].ID)
		}
		if msgs[i].Code != code {
			t.Fatalf("expected code %s at index %d, got %s", code, i, msgs[i].Code)
		}
		if msgs[i].Level != "CRITICAL" {
			t.Fatalf("expected CRITICAL level, got %s", msgs[i].Level)
		}
	}
}

func TestInvalidStockDateRejected(t *testing.T) {
	resp := process(t, model.ClaimPayload{
		EventDate:        "2026-01-01",
		Category:         "STOCK_IN_TRANSIT",
		Scope:            "NATIONAL",
		StockInboundDate: "2026-02-30",
	})

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Messages[0].Code != "INVALID_STOCK_DATE" {
		t.Fatalf("expected INVALID_STOCK_DATE, got %s", resp.CalculationResult.Messages[0].Code)
	}
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	eng := newEngine()

	if _, err := eng.Calculate(model.DeadlineInput{
		Category: model.CategoryAir,
		Scope:    model.ScopeNational,
	}); err == nil {
		t.Fatal("expected error for zero event date")
	}

	if _, err := eng.Calculate(model.DeadlineInput{
		EventDate: date(2026, time.January, 1),
		Category:  model.ClaimCategory("RAIL"),
		Scope:     model.ScopeNational,
	}); err == nil {
		t.Fatal("expected error for unknown category")
	}

	if _, err := eng.Calculate(model.DeadlineInput{
		EventDate: date(2026, time.January, 1),
		Category:  model.CategoryAir,
		Scope:     model.JurisdictionScope("REGIONAL"),
	}); err == nil {
		t.Fatal("expected error for unknown scope")
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	eng := newEngine()
	in := model.DeadlineInput{
		EventDate:          date(2026, time.January, 1),
		Category:           model.CategoryTerrestrial,
		Scope:              model.ScopeInternational,
		HasGrossNegligence: true,
	}

	first, err := eng.Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := eng.Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("expected identical results, got %s vs %s", a, b)
	}
}

func TestDeadlineOrderingInvariants(t *testing.T) {
	eng := newEngine()
	eventDates := []time.Time{
		date(2024, time.February, 29),
		date(2025, time.December, 31),
		date(2026, time.January, 1),
		date(2026, time.June, 2),
		date(2026, time.August, 14),
	}
	categories := []model.ClaimCategory{
		model.CategoryTerrestrial, model.CategoryAir, model.CategoryMaritime,
	}
	scopes := []model.JurisdictionScope{model.ScopeNational, model.ScopeInternational}

	for _, ev := range eventDates {
		for _, c := range categories {
			for _, s := range scopes {
				res, err := eng.Calculate(model.DeadlineInput{
					EventDate: ev, Category: c, Scope: s,
				})
				if err != nil {
					t.Fatalf("unexpected error for %s/%s: %v", c, s, err)
				}
				event := ev.Format("2006-01-02")
				if res.ReserveDeadline == nil || *res.ReserveDeadline < event {
					t.Fatalf("%s/%s event %s: reserve %v before event", c, s, event, res.ReserveDeadline)
				}
				if res.PrescriptionDeadline == nil || *res.PrescriptionDeadline <= event {
					t.Fatalf("%s/%s event %s: prescription %v not after event", c, s, event, res.PrescriptionDeadline)
				}
			}
		}
	}
}
