package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/samvad-hq/ckan-client/internal/config"
	"github.com/samvad-hq/ckan-client/internal/logger"
	"github.com/samvad-hq/ckan-client/pkg/actions"
	"github.com/samvad-hq/ckan-client/pkg/ckan"
)

// Invoker calls a fixed list of actions against one CKAN instance and prints
// every response. With a poll interval it repeats until cancelled.
type Invoker struct {
	cfg          *config.Config
	client       *ckan.Client
	actions      *actions.Registry
	renderer     *Renderer
	pollInterval time.Duration
	log          logger.Logger
}

// NewInvoker builds an invoker runtime from config. Action names given
// explicitly take precedence over the configured actions file.
func NewInvoker(cfg *config.Config, log logger.Logger, out io.Writer, names ...string) (*Invoker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if out == nil {
		out = os.Stdout
	}

	reg, err := resolveActions(cfg, names)
	if err != nil {
		return nil, err
	}
	actionNames := make([]string, 0, reg.Len())
	for _, e := range reg.All() {
		actionNames = append(actionNames, e.Name)
	}

	renderer, err := NewRenderer(cfg.OutputFmt, out)
	if err != nil {
		return nil, err
	}

	client := ckan.New(cfg.CKANURL, ckan.WithTimeout(cfg.RequestTimeout), ckan.WithLogger(log))
	log.InfoObj("ckan client initialized", "client_config", map[string]any{
		"url":             client.URL(),
		"timeout_seconds": int(cfg.RequestTimeout.Seconds()),
		"actions":         actionNames,
		"output_format":   cfg.OutputFmt,
	})

	return &Invoker{
		cfg:          cfg,
		client:       client,
		actions:      reg,
		renderer:     renderer,
		pollInterval: cfg.PollInterval,
		log:          log,
	}, nil
}

func resolveActions(cfg *config.Config, names []string) (*actions.Registry, error) {
	if len(names) > 0 {
		reg, err := actions.FromNames(names...)
		if err != nil {
			return nil, fmt.Errorf("parse action names: %w", err)
		}
		return reg, nil
	}
	if cfg.ActionsFile == "" {
		return nil, fmt.Errorf("no actions given and no actions_file configured")
	}
	reg, err := actions.Load(cfg.ActionsFile)
	if err != nil {
		return nil, fmt.Errorf("load actions registry: %w", err)
	}
	return reg, nil
}

// Run invokes every action once, then again on every poll tick until the
// context is cancelled. Failed invocations are reported, not returned.
func (i *Invoker) Run(ctx context.Context) error {
	if i == nil || i.client == nil {
		return fmt.Errorf("invoker is not initialized")
	}

	if err := i.runOnce(ctx); err != nil {
		return err
	}
	if i.pollInterval <= 0 {
		return nil
	}

	i.log.InfoObj("invoker loop starting", "invoker_state", map[string]any{
		"actions_count": i.actions.Len(),
		"poll_interval": i.pollInterval.String(),
	})

	ticker := time.NewTicker(i.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			i.log.InfoObj("invoker loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := i.runOnce(ctx); err != nil {
				return err
			}
		}
	}
}

// runOnce invokes each action in order. Only output errors abort the run.
func (i *Invoker) runOnce(ctx context.Context) error {
	start := time.Now()
	failed := 0
	for _, entry := range i.actions.All() {
		if ctx.Err() != nil {
			return nil
		}
		action := entry.Action()
		resp := ckan.InvokeContext[any](ctx, i.client, action)
		doc := NewDocument(action, resp)

		if doc.Kind == ckan.KindResult {
			i.log.InfoObj("action succeeded", "action", action.Name)
		} else {
			failed++
			i.log.WarnObj("action failed", "failure", map[string]any{
				"action":  action.Name,
				"kind":    doc.Kind,
				"message": doc.Message,
			})
		}

		if err := i.renderer.Render(doc); err != nil {
			return fmt.Errorf("render %s: %w", action.Name, err)
		}
	}
	i.log.InfoObj("invocation round completed", "round_meta", map[string]any{
		"actions_count": i.actions.Len(),
		"failed":        failed,
		"elapsed_ms":    time.Since(start).Milliseconds(),
	})
	return nil
}
