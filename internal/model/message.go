package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// Message codes emitted by the engine.
const (
	CodeInvalidEventDate        = "INVALID_EVENT_DATE"
	CodeInvalidStockDate        = "INVALID_STOCK_DATE"
	CodeUnknownCategory         = "UNKNOWN_CATEGORY"
	CodeUnknownScope            = "UNKNOWN_SCOPE"
	CodeRuleNotDetermined       = "RULE_NOT_DETERMINED"
	CodeStorageCoverageExceeded = "STORAGE_COVERAGE_EXCEEDED"
)

func Critical(code, message string) CalculationMessage {
	return CalculationMessage{Level: LevelCritical, Code: code, Message: message}
}

func Warning(code, message string) CalculationMessage {
	return CalculationMessage{Level: LevelWarning, Code: code, Message: message}
}
