package whitelist

import (
	"go.uber.org/zap"

	"github.com/mar-cial/whitelist"
	"github.com/mar-cial/whitelist/config"
	"github.com/mar-cial/whitelist/metrics"
)

func newLogger() (*zap.SugaredLogger, error) {
	lggr, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	return lggr.Sugar(), nil
}

// buildSession loads the configuration at envFile and assembles a session
// around it.
func buildSession(envFile string, lggr *zap.SugaredLogger) (*whitelist.Session, *config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}

	provider, err := cfg.Provider(lggr)
	if err != nil {
		return nil, nil, err
	}

	session := whitelist.NewSession(provider).
		WithLogger(lggr).
		WithMetrics(metrics.New())

	return session, cfg, nil
}
