package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Metadata describes an ingested document: where it came from, when it was
// ingested, its size in several units and a content hash for deduplication.
type Metadata struct {
	Source     string `json:"source,omitempty"` // file path or URL
	Timestamp  string `json:"timestamp"`        // RFC3339
	Hash       string `json:"hash"`             // SHA-256 hex digest
	Characters int    `json:"characters"`
	Words      int    `json:"words"`
	Lines      int    `json:"lines"`
	Platform   string `json:"platform,omitempty"` // detected job board, URL ingestion only
}

// NewMetadata computes metadata for cleaned document text.
func NewMetadata(content, source string) *Metadata {
	return &Metadata{
		Source:     source,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       computeHash(content),
		Characters: len(content),
		Words:      len(strings.Fields(content)),
		Lines:      countLines(content),
	}
}

func computeHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}

// ToJSON marshals the metadata as indented JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return out, nil
}
