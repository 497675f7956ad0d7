// Package testsupport holds fixtures shared by package tests: a fake feed
// server, a controllable clock and config builders.
package testsupport
