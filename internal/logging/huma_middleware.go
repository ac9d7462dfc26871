package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// HumaMiddleware seeds a LogData into each request context and emits one
// completion line per operation with the collected fields and timings.
func HumaMiddleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operationID := ctx.Operation().OperationID

		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")

		next(huma.WithValue(ctx, logDataContextKey{}, logData))

		endTimer()
		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}
