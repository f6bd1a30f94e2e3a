// Package domain defines the values a fleet deployment is generated from.
package domain

import (
	"strings"

	"fleetworks/fleetenv/internal/envgen"
)

// Role identifies the access level an API key grants on the backend.
type Role string

const (
	// RoleMonitor may read robot and task state.
	RoleMonitor Role = "monitor"
	// RoleOperator may create tasks and start workflows.
	RoleOperator Role = "operator"
	// RoleAdmin may do everything, including publishing on the realtime bus.
	RoleAdmin Role = "admin"
)

// Roles lists every role a key is generated for, lowest privilege first.
var Roles = []Role{RoleMonitor, RoleOperator, RoleAdmin}

// ParseRole matches a role name case-insensitively.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

const (
	DefaultSimulatorURL    = "http://127.0.0.1:9001"
	DefaultAppID           = "fleet-sim"
	DefaultAppCode         = "fleet"
	DefaultTokenTTLSeconds = 3000
	DefaultOutputDir       = "deploy"
)

// Options holds everything needed to render the backend, simulator and
// frontend env files.
type Options struct {
	// Service URLs
	BackendURL   string `yaml:"backend_url" validate:"required,singleline,http_url"`
	SimulatorURL string `yaml:"simulator_url" validate:"required,singleline,url"`
	FrontendURL  string `yaml:"frontend_url" validate:"required,singleline,http_url"`

	// ExtraOrigins are additional CORS origins for the backend; "*" allows any.
	ExtraOrigins []string `yaml:"extra_origins,omitempty" validate:"dive,singleline,origins"`

	// Simulator app credentials, shared by the backend and the simulator.
	AppID     string `yaml:"app_id" validate:"required,singleline"`
	AppCode   string `yaml:"app_code" validate:"required,singleline"`
	AppSecret string `yaml:"app_secret,omitempty" validate:"singleline"` // generated when empty

	TokenTTLSeconds int  `yaml:"token_ttl_seconds" validate:"gt=0"`
	AutoReassign    bool `yaml:"auto_reassign,omitempty"`

	KeyLength int    `yaml:"key_length" validate:"gte=16,lte=256"`
	OutputDir string `yaml:"output_dir" validate:"required,singleline"`
}

// DefaultOptions returns Options with every optional field at its default.
func DefaultOptions() Options {
	return Options{
		SimulatorURL:    DefaultSimulatorURL,
		AppID:           DefaultAppID,
		AppCode:         DefaultAppCode,
		TokenTTLSeconds: DefaultTokenTTLSeconds,
		KeyLength:       envgen.DefaultKeyLength,
		OutputDir:       DefaultOutputDir,
	}
}

// Normalize runs every URL through envgen.NormalizeURL and trims the
// free-text fields in place.
func (o *Options) Normalize() {
	o.BackendURL = envgen.NormalizeURL(o.BackendURL)
	o.SimulatorURL = envgen.NormalizeURL(o.SimulatorURL)
	o.FrontendURL = envgen.NormalizeURL(o.FrontendURL)
	o.AppID = strings.TrimSpace(o.AppID)
	o.AppCode = strings.TrimSpace(o.AppCode)
	o.AppSecret = strings.TrimSpace(o.AppSecret)
	o.OutputDir = strings.TrimSpace(o.OutputDir)

	origins := make([]string, 0, len(o.ExtraOrigins))
	for _, v := range o.ExtraOrigins {
		if v = strings.TrimSpace(v); v != "" {
			origins = append(origins, v)
		}
	}
	if len(origins) == 0 {
		origins = nil
	}
	o.ExtraOrigins = origins
}

// CORSOrigins returns the backend CORS string: the frontend URL followed by
// any extra origins.
func (o Options) CORSOrigins() string {
	return envgen.BuildOrigins(append([]string{o.FrontendURL}, o.ExtraOrigins...)...)
}

// Keys holds the credentials generated for one deployment.
type Keys struct {
	APIKeys   map[Role]string
	AppSecret string
}

// APIKey returns the key for role, or "" if none was generated.
func (k Keys) APIKey(role Role) string {
	return k.APIKeys[role]
}
