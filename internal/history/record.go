package history

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Run is one recorded env generation. It never holds key material.
type Run struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	OutputDir   string    `json:"output_dir"`
	Files       []string  `json:"files,omitempty"`
	BackendURL  string    `json:"backend_url,omitempty"`
	FrontendURL string    `json:"frontend_url,omitempty"`
	CORSOrigins string    `json:"cors_origins,omitempty"`
	KeyLength   int       `json:"key_length"`
	StoredKeys  bool      `json:"stored_keys"`
	Outcome     string    `json:"outcome"`
	Detail      string    `json:"detail,omitempty"`
	DurationMs  int64     `json:"duration_ms"`
}
