package models

// DefaultSummary is used when the model reply carries no summary section.
const DefaultSummary = "Analysis Complete."

const (
	MaxMissingKeywords = 5
	MaxSuggestedJobs   = 3
)

type AnalysisRequest struct {
	ResumeText     string
	JobDescription string
}

// AnalysisResult is the parsed model reply. It carries no presentation state.
type AnalysisResult struct {
	Score           int      `json:"score"`
	Summary         string   `json:"summary"`
	MissingKeywords []string `json:"missing_keywords"`
	SuggestedJobs   []string `json:"suggested_jobs"`
}
