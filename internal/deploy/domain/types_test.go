package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func validOptions() Options {
	opts := DefaultOptions()
	opts.BackendURL = "https://api.example.com"
	opts.FrontendURL = "https://fleet.example.com"
	return opts
}

func TestNormalize(t *testing.T) {
	opts := Options{
		BackendURL:   "  https://api.example.com/ ",
		SimulatorURL: "http://127.0.0.1:9001//",
		FrontendURL:  "https://fleet.example.com/",
		ExtraOrigins: []string{" ", "https://a.example.com", ""},
		AppID:        " fleet-sim ",
		OutputDir:    " deploy ",
	}
	opts.Normalize()

	want := Options{
		BackendURL:   "https://api.example.com",
		SimulatorURL: "http://127.0.0.1:9001/",
		FrontendURL:  "https://fleet.example.com",
		ExtraOrigins: []string{"https://a.example.com"},
		AppID:        "fleet-sim",
		OutputDir:    "deploy",
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_DropsEmptyOrigins(t *testing.T) {
	opts := Options{ExtraOrigins: []string{"", "  "}}
	opts.Normalize()
	if opts.ExtraOrigins != nil {
		t.Errorf("expected nil ExtraOrigins, got %q", opts.ExtraOrigins)
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validOptions().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantMsg string
	}{
		{"missing backend", func(o *Options) { o.BackendURL = "" }, "backend-url is required"},
		{"backend not http", func(o *Options) { o.BackendURL = "ftp://api.example.com" }, "backend-url must be an http or https URL"},
		{"frontend garbage", func(o *Options) { o.FrontendURL = "not a url" }, "frontend-url must be an http or https URL"},
		{"simulator garbage", func(o *Options) { o.SimulatorURL = "::" }, "simulator-url must be a URL"},
		{"short keys", func(o *Options) { o.KeyLength = 8 }, "key-length must be between 16 and 256"},
		{"long keys", func(o *Options) { o.KeyLength = 512 }, "key-length must be between 16 and 256"},
		{"zero ttl", func(o *Options) { o.TokenTTLSeconds = 0 }, "token-ttl must be greater than 0"},
		{"no app id", func(o *Options) { o.AppID = "" }, "app-id is required"},
		{"no output dir", func(o *Options) { o.OutputDir = "" }, "out is required"},
		{"origin with newline", func(o *Options) {
			o.ExtraOrigins = []string{"https://a.example.com\nAUTOX_BASE_URL=http://evil.example"}
		}, "cors-origin must not contain control characters"},
		{"origin not a URL", func(o *Options) { o.ExtraOrigins = []string{"a.example.com"} }, "cors-origin must be * or an http or https URL"},
		{"origin list with bad part", func(o *Options) {
			o.ExtraOrigins = []string{"https://a.example.com,ftp://b.example.com"}
		}, "cors-origin must be * or an http or https URL"},
		{"app id with newline", func(o *Options) { o.AppID = "fleet\nAUTOX_FORCE_ENV=0" }, "app-id must not contain control characters"},
		{"app code with carriage return", func(o *Options) { o.AppCode = "fleet\rX=1" }, "app-code must not contain control characters"},
		{"app secret with NUL", func(o *Options) { o.AppSecret = "abc\x00def" }, "app-secret must not contain control characters"},
		{"backend with newline", func(o *Options) { o.BackendURL = "https://api.example.com\nX=1" }, "backend-url must not contain control characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("expected ErrInvalidOptions, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestValidate_AcceptsOriginForms(t *testing.T) {
	opts := validOptions()
	opts.ExtraOrigins = []string{"*", "https://a.example.com, http://localhost:5173/", ""}
	if err := opts.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateOrigins(t *testing.T) {
	valid := []string{"", "*", "https://a.example.com", "http://localhost:5173, https://b.example.com/"}
	for _, v := range valid {
		if err := ValidateOrigins(v); err != nil {
			t.Errorf("ValidateOrigins(%q) = %v, want nil", v, err)
		}
	}

	invalid := []string{"a.example.com", "ftp://a.example.com", "https://", "https://a.example.com\tb", "https://a.example.com\nX=1"}
	for _, v := range invalid {
		if err := ValidateOrigins(v); err == nil {
			t.Errorf("ValidateOrigins(%q) = nil, want error", v)
		}
	}
}

func TestNormalize_LeavesCallerSliceIntact(t *testing.T) {
	caller := []string{"", "https://b.example.com"}
	opts := Options{ExtraOrigins: caller}
	opts.Normalize()

	if diff := cmp.Diff([]string{"", "https://b.example.com"}, caller); diff != "" {
		t.Errorf("caller slice modified (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"https://b.example.com"}, opts.ExtraOrigins); diff != "" {
		t.Errorf("ExtraOrigins mismatch (-want +got):\n%s", diff)
	}
}

func TestCORSOrigins(t *testing.T) {
	opts := validOptions()
	if got := opts.CORSOrigins(); got != "https://fleet.example.com" {
		t.Errorf("got %q", got)
	}

	opts.ExtraOrigins = []string{"https://staging.example.com/", "https://fleet.example.com"}
	if got := opts.CORSOrigins(); got != "https://fleet.example.com,https://staging.example.com" {
		t.Errorf("got %q", got)
	}

	opts.ExtraOrigins = []string{"*"}
	if got := opts.CORSOrigins(); got != "*" {
		t.Errorf("got %q", got)
	}
}

func TestParseRole(t *testing.T) {
	for _, in := range []string{"monitor", " Operator ", "ADMIN"} {
		if _, ok := ParseRole(in); !ok {
			t.Errorf("expected %q to parse", in)
		}
	}
	if _, ok := ParseRole("root"); ok {
		t.Error("expected unknown role to be rejected")
	}
}
