// Package testsupport builds configuration directories for tests.
package testsupport
