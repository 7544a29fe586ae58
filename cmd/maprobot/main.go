// Command maprobot loads a text map and finds shortest paths on it.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/maprobot/internal/logger"
)

func main() {
	err := newRootCmd(os.Stdout).Execute()
	if err != nil {
		// the root command silences cobra's own error line
		fmt.Fprintln(os.Stderr, "Error:", err)
		logger.Debug("command failed", zap.Error(err))
	}
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
