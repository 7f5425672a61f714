package config

import "go.uber.org/zap"

// setLogger picks the zap logger for the given environment. Anything that is
// not development or production gets the example logger, which keeps local
// output deterministic.
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "development":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}
