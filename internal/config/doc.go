// Package config loads the startup configuration for handsfree.
//
// A configuration directory holds three JSON sources: the calibration of each
// camera (camera1-params.json, camera2-params.json) and the base configuration
// (config.json) listing service socket addresses, the worker pool size, the
// primary camera position and the physically located devices. Open reads the
// three sources in order and fails on the first one that cannot be read or
// does not match its schema; every such failure matches ErrConfig and names
// the offending file. Sources may carry // and /* */ comments and trailing
// commas.
//
// Optional base fields are defaulted while parsing. Command-line values are
// layered on afterwards with ApplyOverrides. The device spatial index is built
// on the first call to Config.Index and shared for the rest of the process.
package config
