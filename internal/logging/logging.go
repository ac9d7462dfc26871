package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

const logLevelEnv = "SMARTSPEND_LOG_LEVEL"

func SetupLogging() *logrus.Logger {
	level, err := logrus.ParseLevel(os.Getenv(logLevelEnv))
	if err != nil {
		level = logrus.InfoLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: level,
	}

	return &logger
}
