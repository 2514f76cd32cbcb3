// Package telemetry holds the package-level logger shared by the reactive
// and subject packages, in the style of dockyard's internal/logging
// package. Unlike a service's logging package, this one must stay safe to
// import without any initialization: the default logger is a no-op, and a
// host application opts into real diagnostics with SetLogger.
package telemetry

import "go.uber.org/zap"

// Logger is the shared sugared logger used for debug-level tracing of
// publish, suspend, and subscribe lifecycle events. It is never nil.
var Logger *zap.SugaredLogger = zap.NewNop().Sugar()

// SetLogger installs logger as the package-level Logger. Passing nil
// restores the no-op logger.
func SetLogger(logger *zap.SugaredLogger) {
	if logger == nil {
		Logger = zap.NewNop().Sugar()
		return
	}
	Logger = logger
}
