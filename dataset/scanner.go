// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single line. Large ensemble casts run far past
// bufio's 64 KiB default.
const maxLineBytes = 4 << 20

// Scanner yields Records lazily from an io.Reader, one per non-blank line.
//
//	sc := dataset.NewScanner(r)
//	for sc.Scan() {
//	    rec := sc.Record()
//	}
//	if err := sc.Err(); err != nil { ... }
//
// A non-blank line without a title is still yielded, as a Record whose
// Valid reports false, so one stray line never sinks the whole file.
// Scanning stops only on a read error.
type Scanner struct {
	in   *bufio.Scanner
	rec  Record
	line int
	err  error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	in := bufio.NewScanner(r)
	in.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Scanner{in: in}
}

// Scan advances to the next Record, skipping blank lines. It returns false
// at end of input or on error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.in.Scan() {
		s.line++
		text := s.in.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		// ParseLine's only failure is a missing title, which Valid exposes.
		rec, _ := ParseLine(text)
		rec.Line = s.line
		s.rec = rec
		return true
	}
	if err := s.in.Err(); err != nil {
		s.err = fmt.Errorf("%w: line %d: %v", ErrFileLoad, s.line+1, err)
	}
	return false
}

// Record returns the Record produced by the last successful Scan.
func (s *Scanner) Record() Record { return s.rec }

// Err returns the first error encountered, or nil at a clean end of input.
func (s *Scanner) Err() error { return s.err }

// File is a Scanner bound to an open dataset file. Close it when done.
type File struct {
	*Scanner
	Path string
	f    *os.File
}

// Open opens path for lazy scanning. A missing or unreadable file is
// reported as ErrFileLoad.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileLoad, path, err)
	}
	return &File{Scanner: NewScanner(f), Path: path, f: f}, nil
}

// Close releases the underlying file.
func (f *File) Close() error { return f.f.Close() }

// ReadAll drains r into a slice of Records, malformed ones included.
func ReadAll(r io.Reader) ([]Record, error) {
	return collect(NewScanner(r))
}

func collect(sc *Scanner) ([]Record, error) {
	var out []Record
	for sc.Scan() {
		out = append(out, sc.Record())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Load reads every Record from the file at path, malformed ones included.
func Load(path string) ([]Record, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := collect(f.Scanner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
