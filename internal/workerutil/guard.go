// Package workerutil holds small helpers shared by the background
// workers (event, delivery, scheduler) that have no HTTP request to
// recover into.
package workerutil

import (
	"context"
	"runtime/debug"

	"github.com/wb-go/wbf/logger"
)

// Guard runs fn and recovers any panic, logging it instead of taking
// down the whole process. A long-running consumer loop wraps each
// delivery handler in Guard so one bad message can't kill the worker.
func Guard(log logger.Logger, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.LogAttrs(context.Background(), logger.ErrorLevel, "panic recovered",
				logger.String("worker", name),
				logger.Any("error", r),
				logger.String("stack", string(debug.Stack())),
			)
		}
	}()

	fn()
}
