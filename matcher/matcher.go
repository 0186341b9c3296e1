/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package matcher extracts field values from concrete strings by treating
// a template as a constrained pattern.
package matcher

import (
	"fmt"
	"regexp"
	"strings"

	"pformat.dev/pformat/template"
)

// permissiveClass captures a field with no inline constraint: a run of
// non-separator characters.
const permissiveClass = `[^/]+`

// Pattern is a template compiled into an anchored regular expression.
// Compile once, match many times; a Pattern is safe for concurrent use.
type Pattern struct {
	re   *regexp.Regexp
	tmpl *template.Template

	// keys maps capture-group order to each field's primary key.
	keys []string
}

// Compile builds the composite pattern for t. Literal segments contribute
// their exact text; each field contributes a capturing group wrapping its
// inline constraint, or the permissive non-separator class without one.
func Compile(t *template.Template) (*Pattern, error) {
	var sb strings.Builder
	var keys []string

	sb.WriteString(`\A`)
	for _, seg := range t.Segments {
		switch s := seg.(type) {
		case *template.Literal:
			sb.WriteString(regexp.QuoteMeta(s.Text))
		case *template.FieldRef:
			sb.WriteByte('(')
			if s.HasConstraint {
				sb.WriteString("(?:")
				sb.WriteString(s.InlineConstraint)
				sb.WriteString(")")
			} else {
				sb.WriteString(permissiveClass)
			}
			sb.WriteByte(')')
			keys = append(keys, s.Key())
		}
	}
	sb.WriteString(`\z`)

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("compiling template pattern: %w", err)
	}

	return &Pattern{re: re, tmpl: t, keys: keys}, nil
}

// Match extracts field values from candidate. On success it returns a
// mapping from each field's primary key to its captured substring; when
// the same key appears in multiple fields, the last capture wins. On
// failure it returns a *MatchError locating the first divergence.
//
// Two adjacent unconstrained fields with no separating literal are
// ambiguous; avoiding that is the caller's responsibility.
func (p *Pattern) Match(candidate string) (map[string]string, error) {
	groups := p.re.FindStringSubmatch(candidate)
	if groups == nil {
		return nil, p.diagnose(candidate)
	}

	values := make(map[string]string, len(p.keys))
	for i, key := range p.keys {
		values[key] = groups[i+1]
	}
	return values, nil
}

// Match compiles t and extracts field values from candidate.
func Match(t *template.Template, candidate string) (map[string]string, error) {
	p, err := Compile(t)
	if err != nil {
		return nil, err
	}
	return p.Match(candidate)
}
