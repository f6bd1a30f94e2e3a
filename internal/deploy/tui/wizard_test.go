package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"fleetworks/fleetenv/internal/deploy"
	"fleetworks/fleetenv/internal/deploy/domain"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

func TestValidateHTTPURL(t *testing.T) {
	valid := []string{"https://api.example.com", " http://localhost:8000/ "}
	for _, v := range valid {
		if err := validateHTTPURL(v); err != nil {
			t.Errorf("expected %q to be valid, got %v", v, err)
		}
	}

	invalid := []string{"", "   ", "api.example.com", "ftp://files.example.com", "https://"}
	for _, v := range invalid {
		if err := validateHTTPURL(v); err == nil {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}

func TestValidateURL_AcceptsOtherSchemes(t *testing.T) {
	if err := validateURL("tcp://10.0.0.5:9001"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSplitOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ", nil},
		{"https://a.example.com", []string{"https://a.example.com"}},
		{"https://a.example.com, https://b.example.com/", []string{"https://a.example.com", "https://b.example.com/"}},
		{"*", []string{"*"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, splitOrigins(tt.in)); diff != "" {
			t.Errorf("splitOrigins(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func testPlan(t *testing.T, extra ...string) *deploy.Plan {
	t.Helper()
	opts := domain.DefaultOptions()
	opts.BackendURL = "https://api.example.com"
	opts.FrontendURL = "https://fleet.example.com"
	opts.ExtraOrigins = extra
	opts.OutputDir = filepath.Join(t.TempDir(), "deploy")

	plan, err := deploy.NewService(nil, nil).Plan(opts)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	return plan
}

func TestBuildSummary(t *testing.T) {
	plan := testPlan(t)
	summary := ansi.Strip(BuildSummary(plan))

	for _, want := range []string{
		"https://api.example.com",
		"https://fleet.example.com",
		"fleet-sim",
		"3 API keys + app secret, 48 chars each",
		"backend.env",
		"simulator.env",
		"frontend.env",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("expected summary to contain %q:\n%s", want, summary)
		}
	}

	for role, key := range plan.Keys.APIKeys {
		if strings.Contains(summary, key) {
			t.Errorf("summary leaks the %s key", role)
		}
	}
	if strings.Contains(summary, plan.Keys.AppSecret) {
		t.Error("summary leaks the app secret")
	}
	if strings.Contains(summary, "every origin") {
		t.Error("unexpected wildcard warning")
	}
}

func TestBuildSummary_WildcardWarning(t *testing.T) {
	summary := ansi.Strip(BuildSummary(testPlan(t, "*")))

	if !strings.Contains(summary, "* (any origin)") {
		t.Errorf("expected wildcard CORS label:\n%s", summary)
	}
	if !strings.Contains(summary, "CORS allows every origin.") {
		t.Errorf("expected wildcard warning:\n%s", summary)
	}
}
