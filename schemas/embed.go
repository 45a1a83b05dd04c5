// Package schemas holds the JSON Schemas for the linter's structured output.
package schemas

import "embed"

// StyleReport is the file name of the --json-out report schema.
const StyleReport = "style_report.schema.json"

//go:embed *.schema.json
var files embed.FS

// Read returns the content of an embedded schema file.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}
