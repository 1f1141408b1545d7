// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/actforgood/xlog"

	"github.com/configvars/configvars"
	"github.com/configvars/configvars/internal/cli"
)

func main() {
	logger := xlog.NewSyncLogger(os.Stderr)
	logError := configvars.LogErrorHandler(func() xlog.Logger { return logger })

	if err := cli.NewRootCmd().Execute(); err != nil {
		logError(err)
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}
