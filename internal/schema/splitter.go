// Package schema reads schema-definition files and splits them into
// individually executable statements.
//
// Statements are separated by ';'. A ';' inside a quoted string or
// identifier ('...', "...", `...`) or inside a comment does not end a
// statement. Plain comments are dropped from the output; MySQL version
// comments (/*! ... */) are kept because the server executes them.
// DELIMITER directives and stored-routine bodies are not supported.
package schema

import (
	"os"
	"strings"

	verrors "veritas/pkg/errors"
)

// Load reads the file at path and returns its statements. A missing file
// yields an error matching ErrSchemaNotFound; a file with no statements
// yields ErrEmptySchema.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, verrors.Mark(err, verrors.ErrSchemaNotFound)
		}
		return nil, verrors.Wrap(err, "failed to read schema file")
	}

	statements := Split(string(data))
	if len(statements) == 0 {
		return nil, verrors.ErrEmptySchema
	}
	return statements, nil
}

// Split returns the non-empty, whitespace-trimmed statements in text.
func Split(text string) []string {
	var (
		statements []string
		current    strings.Builder
	)

	flush := func() {
		if stmt := strings.TrimSpace(current.String()); stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			end := quotedEnd(text, i)
			current.WriteString(text[i:end])
			i = end
		case c == '#' || (c == '-' && isDashComment(text, i)):
			i = lineEnd(text, i)
			current.WriteByte(' ')
		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			end := blockEnd(text, i)
			if i+2 < len(text) && text[i+2] == '!' {
				current.WriteString(text[i:end])
			} else {
				current.WriteByte(' ')
			}
			i = end
		case c == ';':
			flush()
			i++
		default:
			current.WriteByte(c)
			i++
		}
	}
	flush()

	return statements
}

// quotedEnd returns the index just past the quote that closes the literal
// opened at start. Backslash escapes apply to strings but not to backtick
// identifiers; a doubled quote character is an escaped quote in both.
// An unterminated literal runs to the end of text.
func quotedEnd(text string, start int) int {
	quote := text[start]
	for i := start + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			if quote != '`' {
				i++
			}
		case quote:
			if i+1 < len(text) && text[i+1] == quote {
				i++
				continue
			}
			return i + 1
		}
	}
	return len(text)
}

// isDashComment reports whether a "--" comment starts at i. MySQL requires
// whitespace (or end of input) after the second dash.
func isDashComment(text string, i int) bool {
	if i+1 >= len(text) || text[i+1] != '-' {
		return false
	}
	if i+2 == len(text) {
		return true
	}
	switch text[i+2] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func lineEnd(text string, start int) int {
	if idx := strings.IndexByte(text[start:], '\n'); idx >= 0 {
		return start + idx + 1
	}
	return len(text)
}

func blockEnd(text string, start int) int {
	if idx := strings.Index(text[start+2:], "*/"); idx >= 0 {
		return start + 2 + idx + 2
	}
	return len(text)
}
