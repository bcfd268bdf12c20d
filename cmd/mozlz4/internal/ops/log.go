package ops

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func SetupLogging() {
	log.SetOutput(os.Stderr)

	if CLI.LogJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	if CLI.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}
