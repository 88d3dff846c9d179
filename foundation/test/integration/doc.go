// Package integration holds tests that cross package boundaries.
//
// Package: integration
// Title: Ultimate.Utilities Integration Tests
// Description: Verifies that the utility packages report errors the same
//              way and that their outputs compose: tokens from stringx feed
//              slicex, records mapped by objectx are joined and hashed.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration test suite
// - 2025-10-19 v0.2.0: Rewritten for stringx, slicex, objectx and hashx
//
// Test Categories:
//
// Error Integration Tests (error_integration_test.go):
// - every module returns *error.Error with a module detail, code and severity
// - argument errors are low severity, I/O failures high
//
// Module Integration Tests (module_integration_test.go):
// - split, set algebra and join round trips
// - mapping parsed records and fingerprinting them
// - concurrent use of the shared Default mapper
//
// Performance Integration Tests (performance_test.go):
// - benchmarks for the same pipelines
package integration
