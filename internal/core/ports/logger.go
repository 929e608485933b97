// Package ports defines the core interfaces for the application.
package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetOutput redirects records to w.
	SetOutput(w io.Writer)
	// SetJSON switches between JSON and text records.
	SetJSON(enable bool)
}
