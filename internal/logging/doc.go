// Package logging assembles the slog loggers used by handsfree.
//
// New builds either a console handler for people watching a terminal or a
// JSON handler for log shippers. The package also carries the shared field
// keys, a run-scoped context helper and a no-op logger for tests.
package logging
