package search

import (
	"fmt"
	"regexp"
	"regexp/syntax"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MatchAll is the expression used when no pattern is supplied.
const MatchAll = ".*"

// Pattern is a compiled name-matching rule.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// CompilePattern compiles expr as an unanchored regular expression.
// An empty expr compiles to MatchAll.
func CompilePattern(expr string, ignoreCase bool) (*Pattern, error) {
	if expr == "" {
		expr = MatchAll
	}
	source := expr
	if ignoreCase {
		source = "(?i)" + source
	}

	tree, err := syntax.Parse(source, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	normalizeLiterals(tree)

	re, err := regexp.Compile(tree.String())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return &Pattern{expr: expr, re: re}, nil
}

// normalizeLiterals rewrites literal runs to NFC, the form names are matched
// in. Character classes keep their members as written.
func normalizeLiterals(re *syntax.Regexp) {
	if re.Op == syntax.OpLiteral {
		re.Rune = []rune(norm.NFC.String(string(re.Rune)))
		return
	}
	for _, sub := range re.Sub {
		normalizeLiterals(sub)
	}
}

// String returns the pattern as supplied.
func (p *Pattern) String() string {
	if p == nil {
		return MatchAll
	}
	return p.expr
}

// MatchName reports whether name contains a match. Names that are not valid
// UTF-8 never match.
func (p *Pattern) MatchName(name string) bool {
	if !utf8.ValidString(name) {
		return false
	}
	if p == nil {
		return true
	}
	return p.re.MatchString(norm.NFC.String(name))
}

// IsHiddenName reports whether a base name is hidden by the dot-file convention.
// "." and ".." are not hidden.
func IsHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// Matches applies the hidden-entry policy and then the pattern to the entry's base name.
func Matches(entry Entry, pattern *Pattern, includeHidden bool) bool {
	if !includeHidden && entry.Hidden() {
		return false
	}
	return pattern.MatchName(entry.Name)
}
