// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package configvars

import (
	"github.com/actforgood/xlog"
)

// LogErrorHandler is a handler which logs a store/load error with a
// xlog.Logger. It can be wired wherever a configvars operation's error
// should be reported instead of propagated.
// Passed parameter is a function that returns the logger, so the logger
// may be instantiated later than the handler.
func LogErrorHandler(loggerGetter func() xlog.Logger) func(error) {
	return func(err error) {
		loggerGetter().Error(
			xlog.MessageKey, "[configvars] operation failed",
			xlog.ErrorKey, xlog.StackErr(err),
		)
	}
}
