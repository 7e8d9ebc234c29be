package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata contains metadata about a scraped page
type Metadata struct {
	URL         string `json:"url,omitempty"`
	Timestamp   string `json:"timestamp"`             // RFC3339 format
	Hash        string `json:"hash"`                  // SHA256 hex digest of the cleaned text
	Platform    string `json:"platform,omitempty"`    // Detected site platform
	Title       string `json:"title,omitempty"`       // <title> or og:title
	Description string `json:"description,omitempty"` // meta description or og:description
	StatusCode  int    `json:"status_code,omitempty"`
	UsedBrowser bool   `json:"used_browser,omitempty"` // Content came from a headless render
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, url string) *Metadata {
	return &Metadata{
		URL:       url,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
