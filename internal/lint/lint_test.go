package lint

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/lean-style/internal/exceptions"
	"github.com/jonathan/lean-style/internal/report"
	"github.com/jonathan/lean-style/internal/types"
	"github.com/jonathan/lean-style/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const compliant = "/-\n" +
	"Copyright (c) 2021 Jane Doe. All rights reserved.\n" +
	"Released under Apache 2.0 license as described in the file LICENSE.\n" +
	"Authors: Jane Doe\n" +
	"-/\n" +
	"import data.nat.basic\n" +
	"\n" +
	"/-!\n" +
	"# Example\n" +
	"-/\n" +
	"\n" +
	"theorem foo : true := trivial\n"

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func longLine() string {
	return "theorem " + strings.Repeat("x", 100) + "\n"
}

// withLongLines returns a compliant file with overlong lines at the given line numbers
func withLongLines(n int, at ...int) string {
	ls := strings.SplitAfter(compliant, "\n")
	ls = ls[:len(ls)-1]
	for len(ls) < n {
		ls = append(ls, "def y := 2\n")
	}
	for _, i := range at {
		ls[i-1] = longLine()
	}
	return strings.Join(ls, "")
}

func newLinter(t *testing.T, root string, store *exceptions.Store, out *bytes.Buffer) *Linter {
	t.Helper()
	mode := types.ModeGenerate
	if store != nil {
		mode = store.Mode()
	}
	l, err := New(validation.DefaultOptions(root), store, report.For(out, mode), false)
	require.NoError(t, err)
	return l
}

func TestRun_CompliantFilesGenerateNothing(t *testing.T) {
	root := t.TempDir()
	a := writeFile(t, root, "src/a.lean", compliant)
	b := writeFile(t, root, "src/all.lean", "import data.nat.basic\nimport data.list\n")

	var out bytes.Buffer
	result, err := newLinter(t, root, nil, &out).Run([]string{a, b})
	require.NoError(t, err)

	assert.Empty(t, out.String())
	assert.Equal(t, 2, result.FilesChecked)
	assert.Equal(t, 0, result.NewViolations)
	assert.Equal(t, types.ModeGenerate, result.Mode)
	assert.False(t, result.Failed())
}

func TestRun_GenerationModeReportsButDoesNotFail(t *testing.T) {
	root := t.TempDir()
	foo := writeFile(t, root, "foo.lean", withLongLines(40, 15))

	var out bytes.Buffer
	result, err := newLinter(t, root, exceptions.NewStore(root), &out).Run([]string{foo})
	require.NoError(t, err)

	assert.Equal(t, foo+" : line 15 : ERR_LIN : Line has more than 100 characters\n", out.String())
	assert.Equal(t, 1, result.NewViolations)
	assert.False(t, result.Failed())
}

func TestRun_BaselineSuppressesByKindAndPath(t *testing.T) {
	root := t.TempDir()
	foo := writeFile(t, root, "foo.lean", withLongLines(40, 15, 40))
	bar := writeFile(t, root, "bar.lean", withLongLines(20, 18))

	store := exceptions.NewStore(root, exceptions.Entry{Kind: types.KindLineLength, Path: "foo.lean"})

	var out bytes.Buffer
	result, err := newLinter(t, root, store, &out).Run([]string{foo, bar})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Suppressed)
	assert.Equal(t, 1, result.NewViolations)
	assert.Equal(t, 1, result.ByKind[types.KindLineLength])
	assert.Equal(t,
		"::error file="+bar+",line=18,code=ERR_LIN::ERR_LIN: Line has more than 100 characters\n",
		out.String())
	assert.True(t, result.Failed())
}

func TestRun_CheckModeWithoutNewViolationsSucceeds(t *testing.T) {
	root := t.TempDir()
	foo := writeFile(t, root, "foo.lean", withLongLines(40, 15))

	store := exceptions.NewStore(root, exceptions.Entry{Kind: types.KindLineLength, Path: "foo.lean"})

	var out bytes.Buffer
	result, err := newLinter(t, root, store, &out).Run([]string{foo})
	require.NoError(t, err)

	assert.Empty(t, out.String())
	assert.Equal(t, types.ModeCheck, result.Mode)
	assert.False(t, result.Failed())
}

func TestRun_DifferentKindIsNotSuppressed(t *testing.T) {
	root := t.TempDir()
	foo := writeFile(t, root, "foo.lean", strings.Replace(compliant, "theorem foo", "set_option pp.all true\ntheorem foo", 1))

	store := exceptions.NewStore(root, exceptions.Entry{Kind: types.KindLineLength, Path: "foo.lean"})

	var out bytes.Buffer
	result, err := newLinter(t, root, store, &out).Run([]string{foo})
	require.NoError(t, err)

	assert.Equal(t, 1, result.ByKind[types.KindSetOption])
	assert.Contains(t, out.String(), "code=ERR_OPT")
	assert.True(t, result.Failed())
}

func TestRun_UnreadableFileAborts(t *testing.T) {
	root := t.TempDir()
	a := writeFile(t, root, "a.lean", compliant)
	missing := filepath.Join(root, "missing.lean")
	b := writeFile(t, root, "b.lean", "import a b\n")

	var out bytes.Buffer
	result, err := newLinter(t, root, nil, &out).Run([]string{a, missing, b})
	require.Error(t, err)

	var fileErr *validation.FileReadError
	assert.ErrorAs(t, err, &fileErr)
	assert.Equal(t, 1, result.FilesChecked, "files after the failure are not checked")
	assert.Empty(t, out.String())
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(validation.Options{}, nil, report.NewPlain(&bytes.Buffer{}), false)
	assert.Error(t, err)
}
