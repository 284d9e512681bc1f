// Package fs provides file-based output for crawl artifacts.
package fs

import (
	"io"
	"os"
)

// Ensure ReportFile satisfies io.WriteCloser at compile time.
var _ io.WriteCloser = (*ReportFile)(nil)

// ReportFile is an append-only crawl artifact on disk. The crawler
// streams the header, page sections and summary through it as the crawl
// proceeds, so an interrupted run still leaves a readable artifact.
type ReportFile struct {
	f *os.File
}

// CreateReport creates (or truncates) the artifact at path.
func CreateReport(path string) (*ReportFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &ReportFile{f: f}, nil
}

// Write appends a report fragment.
func (r *ReportFile) Write(p []byte) (int, error) {
	return r.f.Write(p)
}

// Close flushes and closes the artifact.
func (r *ReportFile) Close() error {
	return r.f.Close()
}
