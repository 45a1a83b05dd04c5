// Package validation provides the style checks run over each Lean source file.
package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHeader_Compliant(t *testing.T) {
	content := validHeader +
		"import algebra.group\n" +
		"import data.nat -- for naturals\n" +
		"\n" +
		moduleDoc +
		"def x := 1\n"

	assert.Empty(t, CheckHeader(split(content), "a.lean", testOptions(t)))
}

func TestCheckHeader_BlankLineBeforeHeader(t *testing.T) {
	content := "\n" + validHeader + moduleDoc

	got := CheckHeader(split(content), "a.lean", testOptions(t))
	assert.Equal(t, []string{"ERR_COP:0"}, kindsAndLines(got))
}

func TestCheckHeader_MissingKeyword(t *testing.T) {
	for _, keyword := range []string{"Copyright", "Apache", "Author"} {
		t.Run(keyword, func(t *testing.T) {
			header := strings.ReplaceAll(validHeader, keyword, "Redacted")
			content := "\n" + "\n" + header + moduleDoc

			got := CheckHeader(split(content), "a.lean", testOptions(t))
			// blank lines are reported before the header started, then the header itself
			assert.Equal(t, []string{"ERR_COP:0", "ERR_COP:0", "ERR_COP:3"}, kindsAndLines(got))
		})
	}
}

func TestCheckHeader_CustomLicense(t *testing.T) {
	opts := testOptions(t)
	opts.LicenseKeyword = "MIT"

	got := CheckHeader(split(validHeader+moduleDoc), "a.lean", opts)
	assert.Equal(t, []string{"ERR_COP:1"}, kindsAndLines(got))
}

func TestCheckHeader_NoHeader(t *testing.T) {
	content := "import a\n" +
		"def x := 1\n" +
		"def y := 2\n"

	got := CheckHeader(split(content), "a.lean", testOptions(t))
	// every line before a header is a copyright violation and is still checked as an import
	assert.Equal(t, []string{"ERR_COP:1", "ERR_COP:2", "ERR_MOD:2"}, kindsAndLines(got))
}

func TestCheckHeader_UnclosedHeader(t *testing.T) {
	content := "/-\nCopyright (c) 2020\nimport a b\n"
	assert.Empty(t, CheckHeader(split(content), "a.lean", testOptions(t)))
}

func TestCheckHeader_MultipleImports(t *testing.T) {
	content := validHeader +
		"import a b\n" + // 6
		"import c -- ok\n" + // 7
		"import d e -- not ok\n" + // 8
		moduleDoc

	got := CheckHeader(split(content), "a.lean", testOptions(t))
	assert.Equal(t, []string{"ERR_IMP:6", "ERR_IMP:8"}, kindsAndLines(got))
}

func TestCheckHeader_CodeBeforeDocstring(t *testing.T) {
	content := validHeader +
		"import a\n" + // 6
		"open nat\n" + // 7
		"import b c\n" + // 8, not reached
		moduleDoc

	got := CheckHeader(split(content), "a.lean", testOptions(t))
	assert.Equal(t, []string{"ERR_MOD:7"}, kindsAndLines(got))
}

func TestCheckHeader_StopsAtDocstring(t *testing.T) {
	content := validHeader + moduleDoc + "import a b\n"
	assert.Empty(t, CheckHeader(split(content), "a.lean", testOptions(t)))
}

func TestCheckHeader_WhitespaceOnlyLine(t *testing.T) {
	content := validHeader + "   \n" + moduleDoc

	got := CheckHeader(split(content), "a.lean", testOptions(t))
	assert.Equal(t, []string{"ERR_MOD:6"}, kindsAndLines(got))
}

func TestCheckHeader_MissingDocstring(t *testing.T) {
	content := validHeader + "import a\n\ntheorem foo : true := trivial\n"

	got := CheckHeader(split(content), "a.lean", testOptions(t))
	assert.Equal(t, []string{"ERR_MOD:8"}, kindsAndLines(got))
}
