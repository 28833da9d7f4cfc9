package asyncstate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asyncstate"
)

func writeGraphFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadGraph(t *testing.T) {
	t.Parallel()

	t.Run("parses transitions", func(t *testing.T) {
		t.Parallel()

		path := writeGraphFile(t, `
transitions:
  - {from: draft, event: submit, to: review}
  - {from: review, event: approve, to: published}
`)
		g, err := asyncstate.LoadGraph(path)
		require.NoError(t, err)
		require.Len(t, g.Transitions, 2)
		assert.Equal(t, asyncstate.GraphTransition{From: "draft", Event: "submit", To: "review"}, g.Transitions[0])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := asyncstate.LoadGraph(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeGraphFile(t, "transitions: [not: {a list")
		_, err := asyncstate.LoadGraph(path)
		assert.Error(t, err)
	})
}

func TestApplyGraph(t *testing.T) {
	t.Parallel()

	t.Run("registers every edge", func(t *testing.T) {
		t.Parallel()

		m := asyncstate.New[string, string](
			asyncstate.WithDiagnostics[string, string](asyncstate.DiagnosticsSilent),
		)
		for _, id := range []string{"draft", "review", "published"} {
			require.NoError(t, m.AddState(id, asyncstate.Funcs[string]{}))
		}

		g := &asyncstate.Graph{Transitions: []asyncstate.GraphTransition{
			{From: "draft", Event: "submit", To: "review"},
			{From: "review", Event: "approve", To: "published"},
		}}
		require.NoError(t, asyncstate.ApplyGraph(m, g))

		ctx := context.Background()
		require.NoError(t, m.TransitionTo(ctx, "draft"))
		found, err := m.ProcessEvent(ctx, "submit")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "review", m.Current())
	})

	t.Run("edge referencing an unregistered state fails", func(t *testing.T) {
		t.Parallel()

		m := asyncstate.New[string, string](
			asyncstate.WithDiagnostics[string, string](asyncstate.DiagnosticsSilent),
		)
		require.NoError(t, m.AddState("draft", asyncstate.Funcs[string]{}))

		g := &asyncstate.Graph{Transitions: []asyncstate.GraphTransition{
			{From: "draft", Event: "submit", To: "ghost"},
		}}
		assert.ErrorIs(t, asyncstate.ApplyGraph(m, g), asyncstate.ErrUnknownState)
	})
}
