package common

import (
	"github.com/sirupsen/logrus"
)

// Logger is shared by every package in the module. Replace it with
// bigprime.SetLogger.
var Logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}
