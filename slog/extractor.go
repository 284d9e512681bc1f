// Package slog provides logging decorators for webmd domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webmd"
)

// Ensure LoggingExtractor implements webmd.Extractor.
var _ webmd.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of the strategy that
// produced each extraction and how long selection took.
type LoggingExtractor struct {
	next   webmd.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next webmd.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(rawHTML string) (*webmd.ExtractResult, error) {
	begin := time.Now()
	result, err := e.next.Extract(rawHTML)
	if err != nil {
		e.logger.Warn("content extraction failed",
			"error", webmd.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	e.logger.Info("content extracted",
		"strategy", result.Strategy,
		"bytes", len(result.ContentHTML),
		"duration", time.Since(begin),
	)
	return result, nil
}
