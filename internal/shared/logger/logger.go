package logger

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// GetLogger returns zap.Logger instance, but using singleton pattern creates only one reusable instace.
// development config by default, production config when APP_ENV=production
func GetLogger() *zap.Logger {
	once.Do(func() {
		logger = newLogger(resolveEnv())
	})
	return logger
}

// resolveEnv reads APP_ENV after loading .env, the logger is built during package init, before
// config.Load runs, and both must agree on the environment
func resolveEnv() string {
	_ = godotenv.Load()
	return os.Getenv("APP_ENV")
}

func newLogger(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed logger setup : " + err.Error())
	}
	return l
}
