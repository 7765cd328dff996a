package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunInvalidConfigReturnsExitCode(t *testing.T) {
	t.Setenv("RPSLS_HTTP_PORT", "0")

	assert.Equal(t, 1, run())
}

func TestRunMissingChallengersFileReturnsExitCode(t *testing.T) {
	t.Setenv("RPSLS_CHALLENGERS_FILE", t.TempDir()+"/missing.yaml")
	t.Setenv("RPSLS_LOG_LEVEL", "error")

	assert.Equal(t, 1, run())
}
