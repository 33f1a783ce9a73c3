// Package logger provides helper slog.Attr constructors shared across the
// library, keeping attribute naming consistent between packages.
//
// The library logs through the standard log/slog package; consumers supply
// a *slog.Logger via each component's WithLogger option, or the default
// logger is used.
package logger
