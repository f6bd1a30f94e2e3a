// Package deploy turns deployment options into written env files: it
// generates keys, renders the templates, writes the files and records the run.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetworks/fleetenv/internal/deploy/domain"
	"fleetworks/fleetenv/internal/envfile"
	"fleetworks/fleetenv/internal/envgen"
	"fleetworks/fleetenv/internal/history"
	"fleetworks/fleetenv/internal/secrets"
	"fleetworks/fleetenv/internal/templates"

	"go.uber.org/zap"
)

// Plan is a fully rendered deployment, ready to be written.
type Plan struct {
	Options     domain.Options
	Keys        domain.Keys
	CORSOrigins string
	Files       []envfile.File
}

// ApplyOptions controls how a Plan is written.
type ApplyOptions struct {
	// Force overwrites existing env files.
	Force bool
	// StoreKeys saves every generated key in the secret store.
	StoreKeys bool
}

// Result describes a written Plan.
type Result struct {
	RunID string
	Paths []string
}

// Service generates and writes deployment env files. The secret store and
// history repository are optional.
type Service struct {
	gen     envgen.Generator
	secrets secrets.Store
	history history.Repository
}

// NewService creates a deploy service. Either dependency may be nil.
func NewService(store secrets.Store, repo history.Repository) *Service {
	return &Service{secrets: store, history: repo}
}

// WithGenerator replaces the key generator. Intended for testing.
func (s *Service) WithGenerator(g envgen.Generator) *Service {
	s.gen = g
	return s
}

// Close releases repository resources.
func (s *Service) Close() error {
	if s.history == nil {
		return nil
	}
	return s.history.Close()
}

// Plan normalizes and validates opts, generates every key and renders the
// three env files. A failing random source aborts the plan.
func (s *Service) Plan(opts domain.Options) (*Plan, error) {
	opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	keys, err := s.GenerateKeys(opts.KeyLength, opts.AppSecret)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Options:     opts,
		Keys:        keys,
		CORSOrigins: opts.CORSOrigins(),
	}
	plan.Files, err = render(opts, keys, plan.CORSOrigins)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// GenerateKeys creates one API key per role plus the app secret, unless
// appSecret is already set.
func (s *Service) GenerateKeys(length int, appSecret string) (domain.Keys, error) {
	keys := domain.Keys{
		APIKeys:   make(map[domain.Role]string, len(domain.Roles)),
		AppSecret: appSecret,
	}
	for _, role := range domain.Roles {
		k, err := s.gen.Key(length)
		if err != nil {
			return domain.Keys{}, fmt.Errorf("generate %s key: %w", role, err)
		}
		keys.APIKeys[role] = k
	}
	if keys.AppSecret == "" {
		k, err := s.gen.Key(length)
		if err != nil {
			return domain.Keys{}, fmt.Errorf("generate app secret: %w", err)
		}
		keys.AppSecret = k
	}
	return keys, nil
}

func render(opts domain.Options, keys domain.Keys, cors string) ([]envfile.File, error) {
	roleKeys := make([]templates.RoleKey, 0, len(domain.Roles))
	for _, role := range domain.Roles {
		roleKeys = append(roleKeys, templates.RoleKey{Role: string(role), Key: keys.APIKey(role)})
	}

	backend, err := templates.RenderBackend(templates.BackendParams{
		SimulatorURL:    opts.SimulatorURL,
		AppID:           opts.AppID,
		AppSecret:       keys.AppSecret,
		AppCode:         opts.AppCode,
		TokenTTLSeconds: opts.TokenTTLSeconds,
		AutoReassign:    opts.AutoReassign,
		APIKeys:         roleKeys,
		CORSOrigins:     cors,
	})
	if err != nil {
		return nil, err
	}

	simulator, err := templates.RenderSimulator(templates.SimulatorParams{
		PublicURL:   opts.SimulatorURL,
		AppID:       opts.AppID,
		AppSecret:   keys.AppSecret,
		AppCode:     opts.AppCode,
		CORSOrigins: envgen.BuildOrigins(opts.BackendURL),
	})
	if err != nil {
		return nil, err
	}

	frontend, err := templates.RenderFrontend(templates.FrontendParams{
		APIBaseURL: opts.BackendURL,
		WSURL:      envgen.WebSocketURL(opts.BackendURL, "/ws"),
		APIKey:     keys.APIKey(domain.RoleOperator),
	})
	if err != nil {
		return nil, err
	}

	return []envfile.File{
		{Name: templates.BackendFile, Content: backend},
		{Name: templates.SimulatorFile, Content: simulator},
		{Name: templates.FrontendFile, Content: frontend},
	}, nil
}

// Apply writes the plan's files, optionally stores the keys, and records the
// run in history. History failures are logged and otherwise ignored.
func (s *Service) Apply(ctx context.Context, plan *Plan, ao ApplyOptions) (*Result, error) {
	start := time.Now()
	run := &history.Run{
		OutputDir:   plan.Options.OutputDir,
		BackendURL:  plan.Options.BackendURL,
		FrontendURL: plan.Options.FrontendURL,
		CORSOrigins: plan.CORSOrigins,
		KeyLength:   plan.Options.KeyLength,
		StoredKeys:  ao.StoreKeys && s.secrets != nil,
	}

	result, err := s.apply(ctx, plan, ao)
	if result != nil {
		run.Files = result.Paths
	}
	run.DurationMs = time.Since(start).Milliseconds()
	run.Outcome = history.OutcomeSuccess
	if err != nil {
		run.Outcome = history.OutcomeError
		run.Detail = err.Error()
	}
	runID := s.record(run)

	if err != nil {
		return nil, err
	}
	result.RunID = runID
	return result, nil
}

func (s *Service) apply(ctx context.Context, plan *Plan, ao ApplyOptions) (*Result, error) {
	paths, err := envfile.WriteAll(ctx, plan.Options.OutputDir, plan.Files, ao.Force)
	if err != nil {
		return nil, err
	}
	result := &Result{Paths: paths}

	if ao.StoreKeys {
		if s.secrets == nil {
			return result, errors.New("secret store unavailable")
		}
		if err := s.storeKeys(plan.Keys); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (s *Service) storeKeys(keys domain.Keys) error {
	for _, role := range domain.Roles {
		if err := s.secrets.Set(string(role), keys.APIKey(role)); err != nil {
			return fmt.Errorf("store %s key: %w", role, err)
		}
	}
	if err := s.secrets.Set(secrets.AppSecretName, keys.AppSecret); err != nil {
		return fmt.Errorf("store app secret: %w", err)
	}
	zap.L().Debug("stored keys in secret store", zap.Int("count", len(domain.Roles)+1))
	return nil
}

// RecordFailure records a run that failed before any file was written, such
// as invalid options or an unavailable random source. It returns the run ID,
// or "" when history is unavailable.
func (s *Service) RecordFailure(opts domain.Options, cause error, elapsed time.Duration) string {
	opts.Normalize()
	return s.record(&history.Run{
		OutputDir:   opts.OutputDir,
		BackendURL:  opts.BackendURL,
		FrontendURL: opts.FrontendURL,
		KeyLength:   opts.KeyLength,
		Outcome:     history.OutcomeError,
		Detail:      cause.Error(),
		DurationMs:  elapsed.Milliseconds(),
	})
}

func (s *Service) record(run *history.Run) string {
	if s.history == nil {
		return ""
	}
	if err := s.history.Save(run); err != nil {
		zap.L().Warn("failed to record generation run", zap.Error(err))
		return ""
	}
	return run.ID
}
