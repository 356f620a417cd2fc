package pipeline

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"bare object", `{"score": 80}`, `{"score": 80}`, true},
		{"markdown fence", "```json\n{\"score\": 80}\n```", `{"score": 80}`, true},
		{"prose around", `Sure! Here it is: {"score": 80} Hope that helps.`, `{"score": 80}`, true},
		{"no braces", "the candidate looks strong", "", false},
		{"only open brace", "{ broken", "", false},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractJSON(tc.raw)
			if ok != tc.ok {
				t.Fatalf("extractJSON(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("extractJSON(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseResumeReview(t *testing.T) {
	score, summary, ok := parseResumeReview(`{"score": 85, "summary": "Strong Go background."}`)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if score != 85 {
		t.Fatalf("score = %d, want 85", score)
	}
	if summary != "Strong Go background." {
		t.Fatalf("summary = %q", summary)
	}

	if _, _, ok := parseResumeReview("not json at all"); ok {
		t.Fatal("expected parse to fail on non-JSON")
	}
	if _, _, ok := parseResumeReview(`{"score": "high"}`); ok {
		t.Fatal("expected parse to fail on wrong types")
	}

	// Out-of-range scores are clamped, not rejected.
	score, _, ok = parseResumeReview(`{"score": 150, "summary": "x"}`)
	if !ok || score != 100 {
		t.Fatalf("score = %d, ok = %v, want 100, true", score, ok)
	}
	score, _, ok = parseResumeReview(`{"score": -5, "summary": "x"}`)
	if !ok || score != 0 {
		t.Fatalf("score = %d, ok = %v, want 0, true", score, ok)
	}
}

func TestParseInterviewReview(t *testing.T) {
	score, feedback, decision, ok := parseInterviewReview(
		`{"score": 72, "feedback": "Solid answers.", "decision": "FINALIST"}`)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if score != 72 || feedback != "Solid answers." || decision != "FINALIST" {
		t.Fatalf("got (%d, %q, %q)", score, feedback, decision)
	}

	if _, _, _, ok := parseInterviewReview("I think they did well"); ok {
		t.Fatal("expected parse to fail without JSON")
	}
}

func TestIsFinalistDecision(t *testing.T) {
	cases := []struct {
		decision string
		want     bool
	}{
		{"FINALIST", true},
		{"finalist", true},
		{"Decision: Finalist", true},
		{"The candidate is a finalist.", true},
		{"REJECTED", false},
		{"not ready", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := isFinalistDecision(tc.decision); got != tc.want {
			t.Errorf("isFinalistDecision(%q) = %v, want %v", tc.decision, got, tc.want)
		}
	}
}
