package domain

// ScenarioOutcome is the result of one scenario in a batch. Exactly one of
// Result or Error is set.
type ScenarioOutcome struct {
	Index  int             `json:"index"`
	Result *MortgageResult `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
	Field  string          `json:"field,omitempty"`
}
