package model

import (
	"fmt"
	"time"
)

// ClaimCategory is the closed set of transport/loss categories handled by the
// rule matrix. Adding a category requires extending the matrix; unknown
// values are rejected at the boundary, never defaulted.
type ClaimCategory string

const (
	CategoryTerrestrial    ClaimCategory = "TERRESTRIAL"
	CategoryAir            ClaimCategory = "AIR"
	CategoryMaritime       ClaimCategory = "MARITIME"
	CategoryStockInTransit ClaimCategory = "STOCK_IN_TRANSIT"
)

// ParseCategory converts a wire value into a ClaimCategory.
func ParseCategory(s string) (ClaimCategory, error) {
	c := ClaimCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown claim category: %q", s)
	}
	return c, nil
}

// Valid reports whether the category is a member of the closed set.
func (c ClaimCategory) Valid() bool {
	switch c {
	case CategoryTerrestrial, CategoryAir, CategoryMaritime, CategoryStockInTransit:
		return true
	}
	return false
}

// JurisdictionScope distinguishes national from international carriage.
type JurisdictionScope string

const (
	ScopeNational      JurisdictionScope = "NATIONAL"
	ScopeInternational JurisdictionScope = "INTERNATIONAL"
)

// ParseScope converts a wire value into a JurisdictionScope.
func ParseScope(s string) (JurisdictionScope, error) {
	sc := JurisdictionScope(s)
	if !sc.Valid() {
		return "", fmt.Errorf("unknown jurisdiction scope: %q", s)
	}
	return sc, nil
}

// Valid reports whether the scope is a member of the closed set.
func (s JurisdictionScope) Valid() bool {
	switch s {
	case ScopeNational, ScopeInternational:
		return true
	}
	return false
}

// DeadlineInput is the immutable input of a single deadline calculation.
// All dates are date-only, anchored at UTC midnight. The stock fields are
// meaningful only for STOCK_IN_TRANSIT claims; their absence is not an error.
type DeadlineInput struct {
	EventDate              time.Time
	Category               ClaimCategory
	Scope                  JurisdictionScope
	HasGrossNegligence     bool
	StockInboundDate       *time.Time
	StockOutboundDate      *time.Time
	HasStockInboundReserve bool
}
