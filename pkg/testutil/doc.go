// Package testutil provides helpers shared by unitool tests.
//
// Key components:
//   - TestEnvironment: isolated config, state, project and editor locations
//   - FakeExecutor: a unity.Executor that plays back canned editor runs
//   - CreateFile / CreateDir: fixture files that fail the test on error
package testutil
