package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/louiss0/cargo-build-delegator/env"
)

// Unflagged builds carry the "development" mode.

func TestNewGoEnvDefaultsToDevelopment(t *testing.T) {
	goEnv := env.NewGoEnv()

	assert.Equal(t, "development", goEnv.Mode())
	assert.True(t, goEnv.IsDevelopmentMode())
	assert.False(t, goEnv.IsProductionMode())
	assert.False(t, goEnv.IsDebugMode())
}

func TestExecuteIfModeIsProductionSkipsCallbackInDevelopment(t *testing.T) {
	goEnv := env.NewGoEnv()

	called := false
	goEnv.ExecuteIfModeIsProduction(func() { called = true })

	assert.False(t, called)
}
