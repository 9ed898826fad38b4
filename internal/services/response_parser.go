package services

import (
	"strconv"
	"strings"
	"unicode"

	"alfredoptarigan/resumatch/internal/models"
)

const markerPrefix = "###"

const (
	SectionScore    = "SCORE"
	SectionSummary  = "SUMMARY"
	SectionKeywords = "KEYWORDS"
	SectionJobs     = "JOBS"
)

const (
	MinScore = 0
	MaxScore = 100
)

// ParseAnalysis extracts the four sections from a raw model reply. It never
// fails: every missing or malformed section resolves to its default.
//
// The reply is cut at every marker first, so a section body always ends at
// the next marker regardless of the order the model emitted them in.
func ParseAnalysis(raw string) models.AnalysisResult {
	sections := splitSections(raw)

	summary := strings.TrimSpace(sections[SectionSummary])
	if summary == "" {
		summary = models.DefaultSummary
	}

	return models.AnalysisResult{
		Score:           parseScore(sections[SectionScore]),
		Summary:         summary,
		MissingKeywords: splitList(sections[SectionKeywords], models.MaxMissingKeywords),
		SuggestedJobs:   splitList(sections[SectionJobs], models.MaxSuggestedJobs),
	}
}

// splitSections maps upper-cased section names to their bodies. A marker may
// sit anywhere in the reply, including mid-line. The first occurrence of a
// name wins.
func splitSections(raw string) map[string]string {
	sections := make(map[string]string)

	pos := strings.Index(raw, markerPrefix)
	for pos >= 0 {
		name, body := parseMarker(raw[pos:])

		end := strings.Index(body, markerPrefix)
		if end < 0 {
			end = len(body)
		}

		if name != "" {
			if _, seen := sections[name]; !seen {
				sections[name] = body[:end]
			}
		}

		if end == len(body) {
			break
		}
		// body is a suffix of raw
		pos = len(raw) - len(body) + end
	}

	return sections
}

// parseMarker splits "### **SCORE**: 85" into ("SCORE", " 85"). The name is
// the run of letters after the hashes.
func parseMarker(marker string) (string, string) {
	rest := strings.TrimLeft(marker, "#")
	rest = strings.TrimLeft(rest, " \t")
	rest = strings.TrimLeft(rest, "*")

	end := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsLetter(r) })
	if end < 0 {
		end = len(rest)
	}

	return strings.ToUpper(rest[:end]), strings.TrimLeft(rest[end:], "*:")
}

func parseScore(body string) int {
	body = strings.TrimSpace(body)

	end := 0
	for end < len(body) && body[end] >= '0' && body[end] <= '9' {
		end++
	}
	if end == 0 {
		return MinScore
	}

	score, err := strconv.Atoi(body[:end])
	if err != nil {
		// only a digit run too long for int gets here
		return MaxScore
	}

	return ClampScore(score)
}

func ClampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// splitList splits a section body on commas. A line break inside an entry is
// read as a space, so a wrapped job title stays one entry.
func splitList(body string, limit int) []string {
	items := []string{}

	for _, piece := range strings.Split(body, ",") {
		piece = strings.Join(strings.Fields(piece), " ")
		if piece == "" {
			continue
		}
		items = append(items, piece)
		if len(items) == limit {
			break
		}
	}

	return items
}
