// Package views turns an analysis result into something a person can read.
//
// NewReport is a pure function of models.AnalysisResult; the HTML templates only
// consume the resulting Report, so another front end can reuse the same view
// model without touching parsing.
package views

import (
	"net/url"

	"alfredoptarigan/resumatch/internal/models"
)

type Tier string

const (
	TierPositive Tier = "positive"
	TierWarning  Tier = "warning"
	TierNegative Tier = "negative"
)

var tierColors = map[Tier]string{
	TierPositive: "#10b981",
	TierWarning:  "#f59e0b",
	TierNegative: "#ef4444",
}

// gapWeights is display decoration only. The model does not rank keywords.
var gapWeights = [models.MaxMissingKeywords]int{90, 80, 70, 60, 50}

// GapWeights returns a copy of the fixed gap bar weights.
func GapWeights() [models.MaxMissingKeywords]int {
	return gapWeights
}

const (
	MissingInputWarning = "Please upload a resume and provide a job description."
	NoGapsMessage       = "No critical gaps found!"
	OptimizedMessage    = "Resume optimized."
	NoJobsMessage       = "No job titles found."
)

const (
	linkedInSearchURL = "https://www.linkedin.com/jobs/search/?keywords="
	googleSearchURL   = "https://www.google.com/search?q="
)

type Bar struct {
	Label  string
	Weight int
}

type JobLink struct {
	Title       string
	LinkedInURL string
	GoogleURL   string
}

type Report struct {
	ID       string
	Score    int
	Tier     Tier
	Color    string
	Summary  string
	Bars     []Bar
	Keywords []string
	Jobs     []JobLink
}

func ScoreTier(score int) Tier {
	switch {
	case score >= 70:
		return TierPositive
	case score >= 50:
		return TierWarning
	default:
		return TierNegative
	}
}

func TierColor(tier Tier) string {
	return tierColors[tier]
}

func NewReport(result models.AnalysisResult) Report {
	tier := ScoreTier(result.Score)

	keywords := result.MissingKeywords
	if len(keywords) > models.MaxMissingKeywords {
		keywords = keywords[:models.MaxMissingKeywords]
	}

	bars := make([]Bar, 0, len(keywords))
	for i, keyword := range keywords {
		bars = append(bars, Bar{Label: keyword, Weight: gapWeights[i]})
	}

	jobs := result.SuggestedJobs
	if len(jobs) > models.MaxSuggestedJobs {
		jobs = jobs[:models.MaxSuggestedJobs]
	}

	links := make([]JobLink, 0, len(jobs))
	for _, job := range jobs {
		links = append(links, BuildJobLink(job))
	}

	return Report{
		Score:    result.Score,
		Tier:     tier,
		Color:    TierColor(tier),
		Summary:  result.Summary,
		Bars:     bars,
		Keywords: keywords,
		Jobs:     links,
	}
}

// BuildJobLink returns the professional-network and web search links for a
// job title. The title is query-escaped, so spaces become '+'.
func BuildJobLink(title string) JobLink {
	q := url.QueryEscape(title)
	return JobLink{
		Title:       title,
		LinkedInURL: linkedInSearchURL + q,
		GoogleURL:   googleSearchURL + q + "+jobs",
	}
}

func (r Report) ToResponse() models.AnalyzeResponse {
	links := make([]models.JobLinkResponse, 0, len(r.Jobs))
	jobs := make([]string, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		jobs = append(jobs, job.Title)
		links = append(links, models.JobLinkResponse{
			Title:       job.Title,
			LinkedInURL: job.LinkedInURL,
			GoogleURL:   job.GoogleURL,
		})
	}

	keywords := append([]string{}, r.Keywords...)

	return models.AnalyzeResponse{
		ID:              r.ID,
		Score:           r.Score,
		Tier:            string(r.Tier),
		Summary:         r.Summary,
		MissingKeywords: keywords,
		SuggestedJobs:   jobs,
		JobLinks:        links,
	}
}
