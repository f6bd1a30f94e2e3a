// Package templates renders the env files for each fleet service.
package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

// File names written for each service.
const (
	BackendFile   = "backend.env"
	SimulatorFile = "simulator.env"
	FrontendFile  = "frontend.env"
)

// RoleKey pairs an API key with the role it grants.
type RoleKey struct {
	Role string
	Key  string
}

// BackendParams holds the substitution values for backend.env.
type BackendParams struct {
	SimulatorURL    string
	AppID           string
	AppSecret       string
	AppCode         string
	TokenTTLSeconds int
	AutoReassign    bool
	// APIKeys are emitted in order as the API_KEYS JSON object.
	APIKeys     []RoleKey
	CORSOrigins string
}

// SimulatorParams holds the substitution values for simulator.env.
type SimulatorParams struct {
	PublicURL   string
	AppID       string
	AppSecret   string
	AppCode     string
	CORSOrigins string
}

// FrontendParams holds the substitution values for frontend.env.
type FrontendParams struct {
	APIBaseURL string
	WSURL      string
	APIKey     string
}

var funcs = template.FuncMap{
	"apiKeys": apiKeysJSON,
	"flag": func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	},
}

var (
	backendTmpl   = template.Must(template.New(BackendFile).Funcs(funcs).Parse(backendTemplate))
	simulatorTmpl = template.Must(template.New(SimulatorFile).Parse(simulatorTemplate))
	frontendTmpl  = template.Must(template.New(FrontendFile).Parse(frontendTemplate))
)

// RenderBackend renders backend.env.
func RenderBackend(p BackendParams) (string, error) {
	if err := required(map[string]string{
		"simulator URL": p.SimulatorURL,
		"app ID":        p.AppID,
		"app secret":    p.AppSecret,
		"app code":      p.AppCode,
	}); err != nil {
		return "", fmt.Errorf("backend env: %w", err)
	}
	if len(p.APIKeys) == 0 {
		return "", fmt.Errorf("backend env: at least one API key is required")
	}
	for _, rk := range p.APIKeys {
		if rk.Key == "" || rk.Role == "" {
			return "", fmt.Errorf("backend env: API key for role %q is empty", rk.Role)
		}
	}
	return execute(backendTmpl, p)
}

// RenderSimulator renders simulator.env.
func RenderSimulator(p SimulatorParams) (string, error) {
	if err := required(map[string]string{
		"public URL": p.PublicURL,
		"app ID":     p.AppID,
		"app secret": p.AppSecret,
		"app code":   p.AppCode,
	}); err != nil {
		return "", fmt.Errorf("simulator env: %w", err)
	}
	return execute(simulatorTmpl, p)
}

// RenderFrontend renders frontend.env.
func RenderFrontend(p FrontendParams) (string, error) {
	if err := required(map[string]string{
		"API base URL":  p.APIBaseURL,
		"websocket URL": p.WSURL,
		"API key":       p.APIKey,
	}); err != nil {
		return "", fmt.Errorf("frontend env: %w", err)
	}
	return execute(frontendTmpl, p)
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func required(fields map[string]string) error {
	var missing []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%s is required", strings.Join(missing, ", "))
}

// apiKeysJSON encodes keys as a JSON object of key → role, preserving order.
func apiKeysJSON(keys []RoleKey) (string, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, rk := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(rk.Key)
		if err != nil {
			return "", err
		}
		r, err := json.Marshal(rk.Role)
		if err != nil {
			return "", err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(r)
	}
	b.WriteByte('}')
	return b.String(), nil
}

const backendTemplate = `# Fleet backend environment
# Generated by fleetenv. Keep this file out of source control.

# AutoX vendor API (points at the simulator)
AUTOX_BASE_URL={{ .SimulatorURL }}
AUTOX_APP_ID={{ .AppID }}
AUTOX_APP_SECRET={{ .AppSecret }}
AUTOX_APP_CODE={{ .AppCode }}
AUTOX_TOKEN_TTL_SECONDS={{ .TokenTTLSeconds }}
AUTOX_FORCE_ENV=1

# Workflow engine
AUTO_REASSIGN_ON_OFFLINE={{ flag .AutoReassign }}

# API key → role map
API_KEYS={{ apiKeys .APIKeys }}

# Comma-separated origins allowed to call the API, or *
CORS_ORIGINS={{ .CORSOrigins }}
`

const simulatorTemplate = `# Fleet simulator environment
# Generated by fleetenv. Keep this file out of source control.

SIM_PUBLIC_URL={{ .PublicURL }}
SIM_APP_ID={{ .AppID }}
SIM_APP_SECRET={{ .AppSecret }}
SIM_APP_CODE={{ .AppCode }}
CORS_ORIGINS={{ .CORSOrigins }}
`

const frontendTemplate = `# Fleet frontend environment
# Generated by fleetenv. Values are embedded in the browser bundle.

VITE_API_BASE_URL={{ .APIBaseURL }}
VITE_WS_URL={{ .WSURL }}
VITE_API_KEY={{ .APIKey }}
`
