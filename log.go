package boutique

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg = logrus.New()

func init() {
	logg.SetOutput(os.Stderr)
	logg.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logg.SetLevel(logrus.WarnLevel)
}

// Logger exposes the package logger, so the CLI can raise verbosity or
// redirect output.
func Logger() *logrus.Logger { return logg }
