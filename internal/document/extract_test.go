package document

import "testing"

func TestExtractPlainText(t *testing.T) {
	got, err := Extract("transcripts/interview_7.txt", []byte("INTERVIEWER: hello"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "INTERVIEWER: hello" {
		t.Fatalf("got %q", got)
	}

	// No extension falls back to passthrough as well.
	got, err = Extract("resume", []byte("plain"))
	if err != nil || got != "plain" {
		t.Fatalf("got (%q, %v)", got, err)
	}
}

func TestExtractUnsupportedType(t *testing.T) {
	if _, err := Extract("resume.exe", []byte("MZ")); err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
}

func TestAllowedUpload(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.docx", true},
		{"resume.doc", true},
		{"resume.txt", true},
		{"resume.exe", false},
		{"resume.png", false},
		{"resume", false},
	}
	for _, tc := range cases {
		if got := AllowedUpload(tc.name); got != tc.want {
			t.Errorf("AllowedUpload(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
