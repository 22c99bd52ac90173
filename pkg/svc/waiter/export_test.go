package waiter

import "github.com/sirupsen/logrus"

// LoggerOf returns the logger a Waiter reports poll cycles to.
func LoggerOf(w *Waiter) logrus.FieldLogger {
	return w.logger
}
