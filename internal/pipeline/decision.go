package pipeline

import (
	"encoding/json"
	"strings"
)

// ShortlistThreshold is the screening cutoff: a resume score at or above it
// shortlists the candidate, anything below rejects.
const ShortlistThreshold = 70

// Markers written in place of oracle text when its output could not be used.
const (
	parseFailedSummary = "Parsing failed."
	manualReviewNote   = "Manual Review Needed (Parse Failed)"
)

type resumeReview struct {
	Score   int    `json:"score"`
	Summary string `json:"summary"`
}

type interviewReview struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
	Decision string `json:"decision"`
}

// extractJSON pulls the first-to-last brace span out of raw model output,
// tolerating markdown fences and prose around the object.
func extractJSON(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// parseResumeReview parses the screening oracle's {score, summary} output.
// ok is false when no usable JSON was found; the caller applies the
// fail-closed default.
func parseResumeReview(raw string) (score int, summary string, ok bool) {
	obj, found := extractJSON(raw)
	if !found {
		return 0, "", false
	}
	var rev resumeReview
	if err := json.Unmarshal([]byte(obj), &rev); err != nil {
		return 0, "", false
	}
	return clampScore(rev.Score), rev.Summary, true
}

// parseInterviewReview parses the grading oracle's {score, feedback,
// decision} output. ok is false when no usable JSON was found; the caller
// applies the fail-open default.
func parseInterviewReview(raw string) (score int, feedback, decision string, ok bool) {
	obj, found := extractJSON(raw)
	if !found {
		return 0, "", "", false
	}
	var rev interviewReview
	if err := json.Unmarshal([]byte(obj), &rev); err != nil {
		return 0, "", "", false
	}
	return clampScore(rev.Score), rev.Feedback, rev.Decision, true
}

// isFinalistDecision maps the oracle's free-text decision to a status.
// LLM output is loose, so any decision containing "FINALIST" counts,
// regardless of case or surrounding text; everything else rejects.
func isFinalistDecision(decision string) bool {
	return strings.Contains(strings.ToUpper(decision), "FINALIST")
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
