package model

type CalculationRequest struct {
	TenantID string       `json:"tenant_id"`
	Claim    ClaimPayload `json:"claim"`
}

// ClaimPayload is the read-only claim record supplied by the surrounding
// application. Dates travel as "YYYY-MM-DD" strings; empty optional fields
// mean "not provided".
type ClaimPayload struct {
	EventDate           string `json:"event_date"`
	Category            string `json:"category"`
	Scope               string `json:"scope"`
	GrossNegligence     bool   `json:"gross_negligence,omitempty"`
	StockInboundDate    string `json:"stock_inbound_date,omitempty"`
	StockOutboundDate   string `json:"stock_outbound_date,omitempty"`
	StockInboundReserve bool   `json:"stock_inbound_reserve,omitempty"`
}
