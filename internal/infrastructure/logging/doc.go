// Package logging provides structured logging for Gray Access Core.
//
// It wraps log/slog with the settings the rest of the application
// expects: JSON output for production, text for development, default
// service and version fields on every entry, and level filtering from
// configuration.
//
// # Usage
//
//	logger := logging.New(cfg.Logging, version)
//	logger.Info("panel store opened", "path", cfg.Database.Path)
//	logger.Error("save failed", "table", table, "error", err)
//
// Never log credentials or card numbers in full; prefer prefixes when a
// value is needed for correlation.
package logging
