package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages  []CalculationMessage `json:"messages"`
	Deadlines *DeadlineResult      `json:"deadlines"`
}

// DeadlineResult is the pure projection of a DeadlineInput under the current
// rule set. Dates are "YYYY-MM-DD". A nil deadline means the rule set leaves
// it undetermined for the claim's category (see message RULE_NOT_DETERMINED),
// never that a determined rule produced nothing.
type DeadlineResult struct {
	ReserveDeadline      *string `json:"reserve_deadline"`
	PrescriptionDeadline *string `json:"prescription_deadline"`
	IsDecadence          bool    `json:"is_decadence"`
	SITWarning           *string `json:"sit_warning"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
