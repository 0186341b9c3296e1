/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package matcher

import (
	"fmt"
	"regexp"
	"strings"

	"pformat.dev/pformat/template"
)

// MatchError reports a candidate string that does not match a template.
type MatchError struct {
	// Offset is the byte offset in the candidate where matching first
	// diverged.
	Offset int

	// Expected describes the template segment that failed to match.
	Expected string

	// Candidate is the string that failed to match.
	Candidate string
}

// Error implements the error interface.
func (e *MatchError) Error() string {
	return fmt.Sprintf("pattern mismatch at offset %d: expected %s", e.Offset, e.Expected)
}

// diagnose locates the first segment at which candidate stops matching, by
// growing an anchored prefix pattern one segment at a time.
func (p *Pattern) diagnose(candidate string) *MatchError {
	var sb strings.Builder
	sb.WriteString(`\A`)

	matched := 0
	for _, seg := range p.tmpl.Segments {
		sb.WriteString(segmentPattern(seg))
		re, err := regexp.Compile(sb.String())
		if err != nil {
			break
		}
		loc := re.FindStringIndex(candidate)
		if loc == nil {
			return &MatchError{
				Offset:    matched,
				Expected:  describeSegment(seg),
				Candidate: candidate,
			}
		}
		matched = loc[1]
	}

	// Every segment prefix matched, so the candidate has trailing text
	// the template does not account for.
	return &MatchError{
		Offset:    matched,
		Expected:  "end of input",
		Candidate: candidate,
	}
}

func segmentPattern(seg template.Segment) string {
	switch s := seg.(type) {
	case *template.Literal:
		return regexp.QuoteMeta(s.Text)
	case *template.FieldRef:
		if s.HasConstraint {
			return "(?:" + s.InlineConstraint + ")"
		}
		return permissiveClass
	default:
		return ""
	}
}

func describeSegment(seg template.Segment) string {
	switch s := seg.(type) {
	case *template.Literal:
		return fmt.Sprintf("literal %q", s.Text)
	case *template.FieldRef:
		return fmt.Sprintf("field %s", s.RawSpan)
	default:
		return "segment"
	}
}
