// Package exceptions loads the baseline of pre-approved style violations.
package exceptions

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/lean-style/internal/types"
	"github.com/jonathan/lean-style/internal/validation"
)

const (
	pathColumn = 0
	kindColumn = 5
)

// Entry is a pre-approved violation: a check kind in a root-relative file.
// Line numbers are deliberately not part of the key.
type Entry struct {
	Kind types.Kind
	Path string
}

// Store is the set of pre-approved violations. An empty store means the linter runs
// in baseline generation mode.
type Store struct {
	root    string
	entries map[Entry]struct{}
}

// NewStore creates a store matching file paths relative to root.
func NewStore(root string, entries ...Entry) *Store {
	s := &Store{root: root, entries: make(map[Entry]struct{}, len(entries))}
	for _, e := range entries {
		s.Add(e.Kind, e.Path)
	}
	return s
}

// Load reads the exceptions file at path. A missing file yields an empty store.
func Load(path, root string) (*Store, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(root), nil
	}
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	defer func() { _ = f.Close() }()

	return Parse(f, path, root)
}

// Parse reads whitespace-separated rows: column 1 is the root-relative file path and
// column 6 the check code, e.g.
//
//	src/foo.lean : line 12 : ERR_LIN : Line has more than 100 characters
//
// which is exactly the linter's generation-mode output. Other columns are ignored, as
// are rows with an unknown code. Rows with fewer than six columns are an error.
func Parse(r io.Reader, name, root string) (*Store, error) {
	s := NewStore(root)
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) <= kindColumn {
			return nil, &ParseError{Path: name, Line: lineNum, Message: "expected at least 6 columns"}
		}

		kind, ok := types.ParseKind(fields[kindColumn])
		if !ok {
			continue
		}
		s.Add(kind, fields[pathColumn])
	}

	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: name, Cause: err}
	}

	return s, nil
}

// Add registers a root-relative path as pre-approved for kind.
func (s *Store) Add(kind types.Kind, relPath string) {
	s.entries[Entry{Kind: kind, Path: filepath.Clean(relPath)}] = struct{}{}
}

// Contains reports whether kind is pre-approved for the root-relative path.
func (s *Store) Contains(kind types.Kind, relPath string) bool {
	_, ok := s.entries[Entry{Kind: kind, Path: filepath.Clean(relPath)}]
	return ok
}

// Suppresses reports whether v is pre-approved. The violation path is made relative
// to the store root first.
func (s *Store) Suppresses(v types.Violation) bool {
	return s.Contains(v.Kind, validation.RelPath(s.root, v.Path))
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Empty reports whether no exceptions are loaded (generation mode).
func (s *Store) Empty() bool {
	return len(s.entries) == 0
}

// Mode returns the reporting mode implied by the store.
func (s *Store) Mode() types.Mode {
	if s.Empty() {
		return types.ModeGenerate
	}
	return types.ModeCheck
}

// Entries returns all entries sorted by path, then kind.
func (s *Store) Entries() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}
