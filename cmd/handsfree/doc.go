// Package main hosts the handsfree entrypoint and command graph.
//
// Every command resolves the configuration directory, loads both camera
// calibrations and the base configuration, and layers command-line overrides
// on top before doing anything else. `run` then hands the result to the
// engine; the remaining commands inspect it.
package main
