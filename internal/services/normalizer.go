package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"cv-analyzer/internal/models"
)

// ParseSnapshot parses a raw model response into a CandidateSnapshot. The
// model is asked for bare JSON but routinely wraps it in a fenced code block,
// so at most one leading and one trailing fence marker are stripped before a
// strict parse. Anything still invalid is returned as an error with no repair
// attempt; the caller keeps the raw text for manual review.
func ParseSnapshot(raw string) (*models.CandidateSnapshot, error) {
	cleaned := StripCodeFence(raw)

	var snapshot models.CandidateSnapshot
	if err := json.Unmarshal([]byte(cleaned), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot JSON: %w", err)
	}

	snapshot.EnsureCollections()
	return &snapshot, nil
}

// StripCodeFence removes one surrounding markdown code fence, if present.
// Text without fence markers passes through unchanged apart from trimming.
func StripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}

	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	return strings.TrimSpace(cleaned)
}
