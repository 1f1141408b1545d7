// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package configvars_test

import (
	"strings"
	"testing"

	"github.com/actforgood/xlog"

	"github.com/configvars/configvars"
)

func TestLogErrorHandler(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		logger       = xlog.NewMockLogger()
		loggerGetter = func() xlog.Logger { return logger }
		subject      = configvars.LogErrorHandler(loggerGetter)
		err          = configvars.NewNameNotFoundError("unused.name")
	)
	defer logger.Close()
	logger.SetLogCallback(xlog.LevelError, func(keyValues ...any) {
		if assertEqual(t, 4, len(keyValues)) {
			assertEqual(t, xlog.MessageKey, keyValues[0])
			if msg, ok := keyValues[1].(string); assertTrue(t, ok) {
				assertTrue(t, strings.Contains(msg, "operation failed"))
			}
			assertEqual(t, xlog.ErrorKey, keyValues[2])
			if errMsg, ok := keyValues[3].(string); assertTrue(t, ok) {
				assertTrue(t, strings.Contains(errMsg, err.Error()))
			}
		}
	})

	// act
	subject(err)

	// assert
	assertEqual(t, 1, logger.LogCallsCount(xlog.LevelError))
}
