package asyncstate

import "log/slog"

// Option configures a Machine during construction.
type Option[S, E comparable] func(*Machine[S, E])

// WithLogger sets the logger used for trace output and log-mode
// diagnostics. Nil loggers are ignored.
func WithLogger[S, E comparable](log *slog.Logger) Option[S, E] {
	return func(m *Machine[S, E]) {
		if log != nil {
			m.log = log
		}
	}
}

// WithDiagnostics selects the diagnostic delivery mode.
func WithDiagnostics[S, E comparable](mode DiagnosticMode) Option[S, E] {
	return func(m *Machine[S, E]) {
		m.diagMode = mode
	}
}

// WithDiagnosticBuffer sets the per-subscription buffer used in
// DiagnosticsChannel mode. Values below one are ignored.
func WithDiagnosticBuffer[S, E comparable](n int) Option[S, E] {
	return func(m *Machine[S, E]) {
		if n >= 1 {
			m.diagBuf = n
		}
	}
}
