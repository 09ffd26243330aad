// Package env provides environment configuration utilities.
package env

import (
	"github.com/louiss0/cargo-build-delegator/build_info"
)

// GoEnv wraps the build-time Go environment mode.
type GoEnv struct {
	goEnv string
}

func NewGoEnv() GoEnv {
	return GoEnv{build_info.GO_MODE.String()}
}

// Mode returns the current Go environment mode string (e.g., "production", "development").
func (e GoEnv) Mode() string {
	return e.goEnv
}

func (e GoEnv) IsDebugMode() bool {
	return e.goEnv == "debug"
}

func (env GoEnv) IsDevelopmentMode() bool {
	return env.goEnv == "development" || env.goEnv == ""
}

func (env GoEnv) IsProductionMode() bool {
	return env.goEnv == "production"
}

func (env GoEnv) ExecuteIfModeIsProduction(cb func()) {
	if env.IsProductionMode() {
		cb()
	}
}
