// Package logger builds configured log/slog loggers. The provider middleware
// accepts a *slog.Logger for reporting failed session resolutions; everything
// else in the module stays silent and returns errors instead.
package logger
