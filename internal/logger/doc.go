// Package logger wraps zap with a global sugared logger, level parsing and
// helpers for carrying a scoped logger through a context.
package logger
