// Package lines splits source files into numbered lines and filters out block comments
// and string literals with the same crude heuristics the style checks have always used.
package lines

import "strings"

const (
	commentOpen  = "/-"
	commentClose = "-/"
	quote        = `"`
	escapedQuote = `\"`
)

// Line is a raw source line with its 1-based line number.
// Text keeps its trailing newline when the file had one.
type Line struct {
	Number int
	Text   string
}

// Split breaks content into lines the way a text-mode readlines does:
// every line keeps its "\n", the last line may lack one, and "\r\n" becomes "\n".
func Split(content string) []Line {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if content == "" {
		return nil
	}

	parts := strings.SplitAfter(content, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	out := make([]Line, len(parts))
	for i, p := range parts {
		out[i] = Line{Number: i + 1, Text: p}
	}
	return out
}

// mode is the classifier state carried from one line to the next.
type mode int

const (
	modeNormal mode = iota
	modeComment
	modeString
)

// SkipComments drops block comment lines and blank lines.
// A line containing "/-" opens a comment, a line containing "-/" closes it and is
// itself dropped. Lines equal to "\n" are dropped everywhere.
func SkipComments(in []Line) []Line {
	var out []Line
	state := modeNormal

	for _, l := range in {
		if strings.Contains(l.Text, commentOpen) {
			state = modeComment
		}
		if strings.Contains(l.Text, commentClose) {
			state = modeNormal
			continue
		}
		if l.Text == "\n" || state == modeComment {
			continue
		}
		out = append(out, l)
	}

	return out
}

// stringState tracks comments and string literals independently: a line may
// toggle the string flag while the comment flag is set from an earlier line.
type stringState struct {
	comment bool
	str     bool
}

func (s stringState) mode() mode {
	switch {
	case s.str:
		return modeString
	case s.comment:
		return modeComment
	default:
		return modeNormal
	}
}

// step advances the state over one line and reports whether the line is kept.
func (s stringState) step(text string) (stringState, bool) {
	// comment markers inside string literals are ignored
	if !s.str {
		if strings.Contains(text, commentOpen) {
			s.comment = true
		}
		if strings.Contains(text, commentClose) {
			s.comment = false
		}
	}

	// quotes inside comments are ignored
	if s.comment {
		return s, true
	}

	quotes := strings.Count(text, quote)
	escaped := strings.Count(text, escapedQuote)
	// Operator precedence matches the historical check: only the parity of the
	// escaped count is subtracted. Existing exception baselines depend on it.
	if quotes-escaped%2 == 1 {
		s.str = !s.str
	}

	// a literal probably begins or ends on any line with a quote
	if quotes > 0 {
		return s, false
	}

	return s, s.mode() != modeString
}

// SkipStrings drops lines that open, close or lie inside a string literal.
// A line toggles the in-string state when its quote count, minus the parity of its
// escaped quote count, equals one. Any line containing a quote is dropped.
func SkipStrings(in []Line) []Line {
	var out []Line
	var state stringState

	for _, l := range in {
		var keep bool
		state, keep = state.step(l.Text)
		if keep {
			out = append(out, l)
		}
	}

	return out
}

// SkipStringBodies drops only the lines that begin inside a string literal.
// Unlike SkipStrings it keeps lines that open a literal or hold complete ones,
// so a declaration such as `reserve infix:50 "~"` stays visible.
func SkipStringBodies(in []Line) []Line {
	var out []Line
	var state stringState

	for _, l := range in {
		inside := state.str
		state, _ = state.step(l.Text)
		if !inside {
			out = append(out, l)
		}
	}

	return out
}

// Declarations returns the lines outside block comments that do not begin inside
// a string literal.
func Declarations(in []Line) []Line {
	return SkipStringBodies(SkipComments(in))
}

// Code returns the lines outside block comments and string literals.
func Code(in []Line) []Line {
	return SkipStrings(SkipComments(in))
}
