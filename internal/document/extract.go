// Package document extracts plain text from uploaded resumes and saved
// interview transcripts before they are sent to the scoring oracle.
package document

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

var mimeByExt = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".rtf":  "application/rtf",
	".odt":  "application/vnd.oasis.opendocument.text",
}

// Extract returns the plain text of a document. The file name is only used
// for its extension; transcripts (.txt) pass through unchanged.
func Extract(name string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))

	switch ext {
	case ".txt", "":
		return string(data), nil
	default:
		mime, ok := mimeByExt[ext]
		if !ok {
			return "", fmt.Errorf("unsupported file type: %s", ext)
		}
		res, err := docconv.Convert(bytes.NewReader(data), mime, true)
		if err != nil {
			return "", fmt.Errorf("failed to parse document: %w", err)
		}
		return res.Body, nil
	}
}

// AllowedUpload reports whether an uploaded resume's extension is accepted.
func AllowedUpload(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".docx", ".doc", ".txt":
		return true
	}
	return false
}
