// Package preflight checks that the external services named in the base
// configuration are reachable before the engine starts talking to them.
//
// These checks run in two contexts:
//   - `handsfree run` logs every failed check as a warning and continues,
//     since the detection services may come up after the controller.
//   - `handsfree check` prints a table of all results and, with --strict,
//     exits non-zero when anything failed.
package preflight
