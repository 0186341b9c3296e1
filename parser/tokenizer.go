/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"pformat.dev/pformat/template"
)

// tokenize splits src into literal runs and field spans. "{{" and "}}"
// collapse to single braces inside literals; an unescaped "{" opens a
// field span that runs to the next "}". Field spans do not nest.
func tokenize(src string) ([]template.Segment, error) {
	var segments []template.Segment
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			segments = append(segments, &template.Literal{Text: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(src) {
		switch src[i] {
		case '{':
			if i+1 < len(src) && src[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}
			end := -1
			for j := i + 1; j < len(src); j++ {
				if src[j] == '{' {
					return nil, &ParseError{
						Kind:   UnbalancedBrace,
						Offset: j,
						Detail: `"{" inside a field span`,
					}
				}
				if src[j] == '}' {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, &ParseError{
					Kind:   UnbalancedBrace,
					Offset: i,
					Detail: `"{" without matching "}"`,
				}
			}
			flush()
			field, err := extractField(src[i+1:end], src[i:end+1], i)
			if err != nil {
				return nil, err
			}
			segments = append(segments, field)
			i = end + 1
		case '}':
			if i+1 < len(src) && src[i+1] == '}' {
				lit.WriteByte('}')
				i += 2
				continue
			}
			return nil, &ParseError{
				Kind:   UnbalancedBrace,
				Offset: i,
				Detail: `"}" outside a field span`,
			}
		default:
			lit.WriteByte(src[i])
			i++
		}
	}
	flush()

	return segments, nil
}
