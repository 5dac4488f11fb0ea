package domain

// ValidationReport captures the outcome of one consolidation run. It is built
// once by the validator and then frozen; the JSON field names are part of the
// contract with the visualization layer.
type ValidationReport struct {
	TotalInstitutions int      `json:"total_institutions"`
	TotalDovidnyky    int      `json:"total_dovidnyky"`
	IndicatorsFound   []string `json:"indicators_found"`
	IndicatorsMissing []string `json:"indicators_missing"`
	KiSumValid        bool     `json:"ki_sum_valid"`
	FormulaValid      bool     `json:"formula_valid"`
	FormulaMatched    int      `json:"formula_matched"`
	FormulaAttempted  int      `json:"formula_attempted"`
	Errors            []string `json:"errors"`
	Warnings          []string `json:"warnings"`
}

// HasErrors reports whether any hard validation error was recorded.
func (r *ValidationReport) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// FormulaSample is the verdict of the attestation formula spot check: how many
// leading rows were sampled, how many matched the recomputed score, and
// whether the match rate cleared the acceptance threshold.
type FormulaSample struct {
	Attempted int
	Matched   int
	Valid     bool
	Message   string
}
