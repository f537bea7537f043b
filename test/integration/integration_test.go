//go:build integration

// Package integration runs the HTTP API feature files with godog.
//
//	go test -tags integration ./test/integration/...
//	GODOG_TAGS='~@backends' go test -tags integration ./test/integration/...
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/eternal-wealth/toolkit/test/integration/steps"
)

func TestFeatures(t *testing.T) {
	format := os.Getenv("GODOG_FORMAT")
	if format == "" {
		format = "pretty"
	}

	opts := godog.Options{
		Format: format,
		Paths:  []string{"features"},
		Output: colors.Colored(os.Stdout),
		Tags:   os.Getenv("GODOG_TAGS"),
		// Scenarios share the in-process redis and sqlite stores.
		Concurrency: 1,
		Strict:      true,
		TestingT:    t,
	}

	status := godog.TestSuite{
		Name:                 "eternal-wealth-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}.Run()

	if status != 0 {
		t.Fatalf("feature suite failed with status %d", status)
	}
}
