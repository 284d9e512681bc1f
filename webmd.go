// Package webmd converts public web pages into clean Markdown, either for a
// single page or for a whole site reachable from a seed URL. Extraction runs
// through an ordered cascade of fallback strategies; site crawls are
// scope-bounded, robots-compliant breadth-first traversals that drive the
// extraction pipeline across many pages and aggregate the result into one
// Markdown artifact.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., trafilatura/, goquery/, robotstxt/).
package webmd
