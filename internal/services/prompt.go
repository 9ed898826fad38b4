package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildMatchPrompt asks for the four sections ResponseParser understands.
// The résumé and job description are appended verbatim at the end.
func (pb *PromptBuilder) BuildMatchPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Act as a Tech Recruiter. Analyze the Resume vs JD.

CRITICAL INSTRUCTION: Output the result in this EXACT format with these headers:

%s
[Just the number 0-100]

%s
[2 sentence summary]

%s
[Top 5 missing skills, separated by commas]

%s
[Top 3 job titles, separated by commas]

Resume: %s
JD: %s`,
		markerPrefix+" "+SectionScore,
		markerPrefix+" "+SectionSummary,
		markerPrefix+" "+SectionKeywords,
		markerPrefix+" "+SectionJobs,
		resumeText, jobDescription)
}
