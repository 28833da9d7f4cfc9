// Package logger provides a small factory around log/slog with sane
// production defaults and a handful of attribute helpers used across the
// module.
//
// New returns a ready-to-use *slog.Logger. Without options it logs JSON at
// INFO to stdout; options switch format, level, output and static
// attributes:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("orchestrator")),
//	)
//
// The attribute helpers (Error, Component, MachineID, State) keep key names
// consistent so log aggregation queries do not have to chase spelling
// variants.
package logger
