// Package rules maps a claim's (category, scope) pair to its reserve rule
// and its prescription/decadence rule. The rule set is closed and small, so
// selection is an explicit branch over the two enumerations rather than a
// lookup table: every pair is matched, and an unmatched pair is a
// programming defect that panics instead of producing a wrong deadline.
package rules

import (
	"fmt"

	"claims-engine/internal/model"
)

// ReserveKind selects the counting mode for the reserve deadline.
type ReserveKind int

const (
	// ReserveNone marks categories whose reserve rule is not determined.
	ReserveNone ReserveKind = iota
	// ReserveCalendarDays counts plain Gregorian days.
	ReserveCalendarDays
	// ReserveBusinessDays counts working days: Saturdays included, Sundays
	// and fixed holidays skipped.
	ReserveBusinessDays
)

// ReserveRule describes how the reserve deadline is counted from the event
// date.
type ReserveRule struct {
	Kind           ReserveKind
	Days           int
	SundayRollover bool
}

// PrescriptionRule describes the prescription (or decadence) term from the
// event date. GrossNegligenceYears, when non-zero, replaces Years for claims
// flagged with gross negligence; the matrix sets it only where the extended
// term applies.
type PrescriptionRule struct {
	Years                int
	Months               int
	GrossNegligenceYears int
}

// RuleSet bundles the rules selected for one (category, scope) pair.
// Determined is false where the available rule set does not fix the reserve
// and prescription terms (STOCK_IN_TRANSIT); callers must not invent
// deadlines for those claims.
type RuleSet struct {
	Reserve      ReserveRule
	Prescription PrescriptionRule
	IsDecadence  bool
	Determined   bool
}

// Select returns the rule set for a valid (category, scope) pair. Callers
// validate both enums first; an unhandled pair panics.
func Select(category model.ClaimCategory, scope model.JurisdictionScope) RuleSet {
	switch category {
	case model.CategoryTerrestrial:
		switch scope {
		case model.ScopeNational:
			return RuleSet{
				Reserve:      ReserveRule{Kind: ReserveCalendarDays, Days: 8, SundayRollover: true},
				Prescription: PrescriptionRule{Years: 1},
				Determined:   true,
			}
		case model.ScopeInternational:
			// CMR-style regime: working-day objection term, ordinary one-year
			// prescription extended to three years for willful misconduct.
			return RuleSet{
				Reserve:      ReserveRule{Kind: ReserveBusinessDays, Days: 7},
				Prescription: PrescriptionRule{Years: 1, GrossNegligenceYears: 3},
				Determined:   true,
			}
		}
	case model.CategoryAir:
		// Scope-independent. The two-year term is peremptory: expiry
		// forfeits the right outright rather than merely barring the action.
		return RuleSet{
			Reserve:      ReserveRule{Kind: ReserveCalendarDays, Days: 14},
			Prescription: PrescriptionRule{Years: 2},
			IsDecadence:  true,
			Determined:   true,
		}
	case model.CategoryMaritime:
		return RuleSet{
			Reserve:      ReserveRule{Kind: ReserveCalendarDays, Days: 3},
			Prescription: PrescriptionRule{Months: 6},
			Determined:   true,
		}
	case model.CategoryStockInTransit:
		// Reserve and prescription terms are not fixed by the available rule
		// set; only the storage-coverage warning applies (engine side).
		return RuleSet{Reserve: ReserveRule{Kind: ReserveNone}}
	}
	panic(fmt.Sprintf("rules: unhandled category/scope pair %s/%s", category, scope))
}
