// Package tui provides the interactive wizard for generating deployment env files.
package tui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"fleetworks/fleetenv/internal/deploy"
	"fleetworks/fleetenv/internal/deploy/domain"
	"fleetworks/fleetenv/internal/envgen"
	"fleetworks/fleetenv/internal/tui/styles"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// ErrAborted is returned when the user cancels the wizard.
var ErrAborted = errors.New("env generation aborted by user")

// Planner builds a deployment plan from options.
type Planner interface {
	Plan(opts domain.Options) (*deploy.Plan, error)
}

// RunGenerateWizard walks the user through every deployment option, generates
// the keys under a spinner, shows a summary and asks for confirmation. The
// returned plan is ready to be applied.
func RunGenerateWizard(planner Planner, prefill domain.Options) (*deploy.Plan, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	opts := prefill
	opts.ExtraOrigins = append([]string(nil), prefill.ExtraOrigins...)

	// ── Step 1: Service URLs ──────────────────────────────────────────────────

	backendField := huh.NewInput().
		Title("Backend URL").
		Description("Public URL of the fleet API, as the browser reaches it").
		Placeholder("https://api.example.com").
		Value(&opts.BackendURL).
		Validate(validateHTTPURL)

	frontendField := huh.NewInput().
		Title("Frontend URL").
		Description("Public URL of the dashboard; added to the backend's CORS origins").
		Placeholder("https://fleet.example.com").
		Value(&opts.FrontendURL).
		Validate(validateHTTPURL)

	simulatorField := huh.NewInput().
		Title("Simulator URL").
		Description("Where the backend reaches the AutoX simulator").
		Placeholder(domain.DefaultSimulatorURL).
		Value(&opts.SimulatorURL).
		Validate(validateURL)

	if err := runForm(accessible,
		huh.NewGroup(backendField),
		huh.NewGroup(frontendField),
		huh.NewGroup(simulatorField),
	); err != nil {
		return nil, err
	}

	// ── Step 2: CORS ──────────────────────────────────────────────────────────

	extra := strings.Join(opts.ExtraOrigins, ", ")
	originsField := huh.NewInput().
		Title("Extra CORS origins (optional)").
		Description("Comma-separated origins allowed besides the frontend, or * for any.\nLeave blank to allow only the frontend.").
		Placeholder("https://staging.example.com").
		Value(&extra).
		Validate(domain.ValidateOrigins)

	if err := runForm(accessible, huh.NewGroup(originsField)); err != nil {
		return nil, err
	}
	opts.ExtraOrigins = splitOrigins(extra)

	// ── Step 3: Simulator credentials ─────────────────────────────────────────

	appIDField := huh.NewInput().
		Title("Simulator app ID").
		Value(&opts.AppID).
		Validate(huh.ValidateNotEmpty())

	appCodeField := huh.NewInput().
		Title("Simulator app code").
		Value(&opts.AppCode).
		Validate(huh.ValidateNotEmpty())

	appSecretField := huh.NewInput().
		Title("Simulator app secret (optional)").
		Description("Leave blank to generate one").
		EchoMode(huh.EchoModePassword).
		Value(&opts.AppSecret)

	reassignField := huh.NewConfirm().
		Title("Reassign tasks when a robot goes offline?").
		Value(&opts.AutoReassign)

	if err := runForm(accessible,
		huh.NewGroup(appIDField, appCodeField, appSecretField),
		huh.NewGroup(reassignField),
	); err != nil {
		return nil, err
	}

	// ── Step 4: Generate keys ─────────────────────────────────────────────────

	var plan *deploy.Plan
	planErr := spinner.New().
		Title("Generating keys...").
		Accessible(accessible).
		Output(os.Stderr).
		ActionWithErr(func(ctx context.Context) error {
			var err error
			plan, err = planner.Plan(opts)
			return err
		}).
		Run()
	if planErr != nil {
		if errors.Is(planErr, huh.ErrUserAborted) || errors.Is(planErr, context.Canceled) {
			return nil, ErrAborted
		}
		return nil, planErr
	}

	// ── Step 5: Summary + Confirm ─────────────────────────────────────────────

	confirm := false
	summaryNote := huh.NewNote().
		Title("Deployment summary").
		Description(BuildSummary(plan))

	confirmField := huh.NewConfirm().
		Title(fmt.Sprintf("Write env files to %s?", plan.Options.OutputDir)).
		Value(&confirm)

	if err := runForm(accessible, huh.NewGroup(summaryNote, confirmField)); err != nil {
		return nil, err
	}

	if !confirm {
		return nil, ErrAborted
	}

	return plan, nil
}

// ── Validation ────────────────────────────────────────────────────────────────

func validateHTTPURL(v string) error {
	if err := validateURL(v); err != nil {
		return err
	}
	u, _ := url.Parse(envgen.NormalizeURL(v))
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must start with http:// or https://")
	}
	return nil
}

func validateURL(v string) error {
	v = envgen.NormalizeURL(v)
	if v == "" {
		return errors.New("URL is required")
	}
	u, err := url.Parse(v)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not a valid URL", v)
	}
	return nil
}

func splitOrigins(s string) []string {
	var origins []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}

// ── Summary ───────────────────────────────────────────────────────────────────

// BuildSummary describes a plan without revealing any key material.
func BuildSummary(plan *deploy.Plan) string {
	opts := plan.Options
	cors := plan.CORSOrigins
	if cors == envgen.AnyOrigin {
		cors = "* (any origin)"
	}
	reassign := "no"
	if opts.AutoReassign {
		reassign = "yes"
	}

	fields := []styles.Field{
		{Label: "Backend", Value: opts.BackendURL},
		{Label: "Frontend", Value: opts.FrontendURL},
		{Label: "Simulator", Value: opts.SimulatorURL},
		{Label: "CORS origins", Value: cors},
		{Label: "App ID", Value: opts.AppID},
		{Label: "App code", Value: opts.AppCode},
		{Label: "Auto-reassign", Value: reassign},
		{Label: "Keys", Value: fmt.Sprintf("%d API keys + app secret, %d chars each", len(plan.Keys.APIKeys), opts.KeyLength)},
		{Label: "Output", Value: opts.OutputDir},
	}

	var b strings.Builder
	b.WriteString(styles.Fields(fields, 60))
	b.WriteString("\n\nFiles:\n")
	for _, f := range plan.Files {
		fmt.Fprintf(&b, "  - %s\n", f.Name)
	}
	if plan.CORSOrigins == envgen.AnyOrigin {
		b.WriteString("\n" + styles.WarningText.Render("CORS allows every origin."))
	}
	return strings.TrimRight(b.String(), "\n")
}

// ── Form runner ───────────────────────────────────────────────────────────────

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
