package config

import (
	"strings"

	"go.uber.org/zap"
)

// setLogger picks the zap flavour for the given environment
func setLogger(environment string) (*zap.Logger, error) {
	switch strings.ToLower(environment) {
	case "production":
		return zap.NewProduction()
	case "local":
		c := zap.NewDevelopmentConfig()
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		return c.Build()
	default:
		return zap.NewDevelopment()
	}
}
