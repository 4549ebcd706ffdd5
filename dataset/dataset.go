// SPDX-License-Identifier: MIT
//
// Package dataset reads the flat movie/cast file that seeds the graph.
//
// Format (UTF-8, one movie per line):
//
//	Title (Year)/Cast Member 1/Cast Member 2/.../Cast Member N
//
// Fields are separated by '/'. A '/' inside a title is already written as
// '|' in the data (e.g. "Frost|Nixon (2008)"); the loader keeps it as is.
// Actor names never contain '/'.
package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Separator splits a line into title and cast fields.
const Separator = "/"

// Sentinel errors for dataset loading.
var (
	// ErrFileLoad is returned when the dataset file cannot be opened or read.
	ErrFileLoad = errors.New("dataset: cannot load file")

	// ErrMalformedLine is returned by ParseLine for a line with no title.
	ErrMalformedLine = errors.New("dataset: malformed line")
)

// Record is one parsed line: a movie title and its cast in file order.
// Cast may be empty for a title-only line. Title is empty only for a
// malformed line handed out by Scanner; see Valid.
type Record struct {
	Title string
	Cast  []string
	// Line is the 1-based line number, or 0 when parsed outside a Scanner.
	Line int
}

// Valid reports whether the record has a title and can become a movie.
func (r Record) Valid() bool { return r.Title != "" }

// ParseLine splits one dataset line into a Record.
//
// Line terminators and surrounding whitespace are stripped from the line and
// from every field. Empty cast fields ("A//B", a trailing '/') are dropped.
// A line whose title is empty is rejected with ErrMalformedLine; the
// returned Record still carries the parsed cast so callers can report it.
func ParseLine(line string) (Record, error) {
	line = strings.TrimSpace(line)
	fields := strings.Split(line, Separator)

	cast := make([]string, 0, len(fields)-1)
	for _, f := range fields[1:] {
		if name := strings.TrimSpace(f); name != "" {
			cast = append(cast, name)
		}
	}

	rec := Record{Title: strings.TrimSpace(fields[0]), Cast: cast}
	if !rec.Valid() {
		return rec, fmt.Errorf("%w: empty title in %q", ErrMalformedLine, line)
	}
	return rec, nil
}

// DisplayTitle restores the '/' characters that the data escapes as '|'.
// Use it only for presentation; graph keys keep the escaped form.
func DisplayTitle(title string) string {
	return strings.ReplaceAll(title, "|", Separator)
}
