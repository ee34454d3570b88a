package bootstrap

import "go.uber.org/zap"

// NewLogger builds the process logger: JSON in production, console elsewhere.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
