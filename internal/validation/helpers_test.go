// Package validation provides the style checks run over each Lean source file.
package validation

import (
	"strconv"
	"testing"

	"github.com/jonathan/lean-style/internal/lines"
	"github.com/jonathan/lean-style/internal/types"
)

const validHeader = "/-\n" +
	"Copyright (c) 2020 Jane Doe. All rights reserved.\n" +
	"Released under Apache 2.0 license as described in the file LICENSE.\n" +
	"Authors: Jane Doe\n" +
	"-/\n"

const moduleDoc = "/-!\n" +
	"# Groups\n" +
	"-/\n"

func testOptions(t *testing.T) Options {
	t.Helper()
	return DefaultOptions(t.TempDir())
}

func kindsAndLines(vs []types.Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Code()+":"+strconv.Itoa(v.Line))
	}
	return out
}

func split(content string) []lines.Line {
	return lines.Split(content)
}
