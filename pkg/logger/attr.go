package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// MachineID records a state machine instance identifier under the key
// "machine_id".
func MachineID(id string) slog.Attr {
	return slog.String("machine_id", id)
}

// State records a state identifier under the key "state". The value may be
// any equality-comparable identifier type.
func State(id any) slog.Attr {
	return slog.Any("state", id)
}
