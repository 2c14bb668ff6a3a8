// Package logger provides the Logger interface used across packed-aes together with
// console and rotating file implementations built on log/slog.
package logger
