package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/asyncstate"
	"github.com/dmitrymomot/asyncstate/pkg/async"
	"github.com/dmitrymomot/asyncstate/pkg/config"
	"github.com/dmitrymomot/asyncstate/pkg/logger"
)

type demoConfig struct {
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"debug"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
	DiagMode  string     `env:"DIAG_MODE" envDefault:"log"`
	GraphFile string     `env:"GRAPH_FILE"`
}

// slowState simulates a state whose enter work takes real time.
type slowState struct {
	delay time.Duration
}

func (s slowState) OnEnter(ctx context.Context, from string) *async.Completion {
	return async.Run(ctx, func(ctx context.Context) error {
		select {
		case <-time.After(s.delay):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}

func (s slowState) OnExit(ctx context.Context, to string) *async.Completion {
	return async.Completed(nil)
}

func main() {
	var cfg demoConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(logger.Component("demo")),
	)
	logger.SetAsDefault(log)

	mode := asyncstate.DiagnosticsLog
	if cfg.DiagMode == "silent" {
		mode = asyncstate.DiagnosticsSilent
	}

	m := asyncstate.New[string, string](
		asyncstate.WithLogger[string, string](log),
		asyncstate.WithDiagnostics[string, string](mode),
	)

	states := map[string]asyncstate.Behavior[string]{
		"draft":     slowState{delay: 100 * time.Millisecond},
		"review":    slowState{delay: 300 * time.Millisecond},
		"published": slowState{delay: 100 * time.Millisecond},
	}
	for id, b := range states {
		if err := m.AddState(id, b); err != nil {
			log.Error("add state", logger.State(id), logger.Error(err))
			os.Exit(1)
		}
	}

	if cfg.GraphFile != "" {
		g, err := asyncstate.LoadGraph(cfg.GraphFile)
		if err != nil {
			log.Error("load graph", logger.Error(err))
			os.Exit(1)
		}
		if err := asyncstate.ApplyGraph(m, g); err != nil {
			log.Error("apply graph", logger.Error(err))
			os.Exit(1)
		}
	} else {
		_ = m.AddTransition("draft", "submit", "review")
		_ = m.AddTransition("review", "approve", "published")
		_ = m.AddTransition("review", "reject", "draft")
	}

	m.OnExiting(func(tr asyncstate.Transition[string]) {
		fmt.Printf("exiting  %-10s -> %s\n", tr.From, tr.To)
	})
	m.OnEntering(func(tr asyncstate.Transition[string]) {
		fmt.Printf("entering %-10s -> %s\n", tr.From, tr.To)
	})
	m.OnEntered(func(tr asyncstate.Transition[string]) {
		fmt.Printf("entered  %s\n", tr.To)
	})

	ctx := context.Background()
	if err := m.TransitionTo(ctx, "draft"); err != nil {
		log.Error("initial transition", logger.Error(err))
		os.Exit(1)
	}

	for _, event := range []string{"submit", "approve", "approve"} {
		found, err := m.ProcessEvent(ctx, event)
		if err != nil {
			log.Error("process event", slog.String("event", event), logger.Error(err))
			os.Exit(1)
		}
		fmt.Printf("event %-8s handled=%v state=%s\n", event, found, m.Current())
	}
}
