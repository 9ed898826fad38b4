package models

type AnalyzeTextRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

type JobLinkResponse struct {
	Title       string `json:"title"`
	LinkedInURL string `json:"linkedin_url"`
	GoogleURL   string `json:"google_url"`
}

type AnalyzeResponse struct {
	ID              string            `json:"id"`
	Score           int               `json:"score"`
	Tier            string            `json:"tier"`
	Summary         string            `json:"summary"`
	MissingKeywords []string          `json:"missing_keywords"`
	SuggestedJobs   []string          `json:"suggested_jobs"`
	JobLinks        []JobLinkResponse `json:"job_links"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
