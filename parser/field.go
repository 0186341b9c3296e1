/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package parser

import (
	"regexp"

	"pformat.dev/pformat/template"
)

// Trailing key-path markers for inline encodings. Both ride inside
// ordinary attribute/index syntax so templates stay visually valid:
// "{loss._[--]:.2f}" carries the default "--", "{id.~[\d+]}" carries the
// reverse-match constraint `\d+`.
const (
	defaultMarker    = "_"
	constraintMarker = "~"
)

// extractField parses one field span's inner text (between the braces).
// Grammar: keypath [ '!' conversion ] [ ':' formatspec ]. The offset is
// the byte position of the field's "{" in the template source.
func extractField(inner, rawSpan string, offset int) (*template.FieldRef, error) {
	keyEnd := len(inner)
	convIdx := -1
	depth := 0

scan:
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '!':
			if depth == 0 && convIdx < 0 {
				convIdx = i
			}
		case ':':
			if depth == 0 {
				keyEnd = i
				break scan
			}
		}
	}

	field := &template.FieldRef{
		RawSpan: rawSpan,
		Offset:  offset,
	}
	if keyEnd < len(inner) {
		field.FormatSpec = inner[keyEnd+1:]
	}

	keyText := inner[:keyEnd]
	if convIdx >= 0 {
		conv := inner[convIdx+1 : keyEnd]
		if len(conv) != 1 {
			return nil, &ParseError{
				Kind:   BadConversion,
				Offset: offset + 1 + convIdx,
				Detail: `expected a single character after "!"`,
			}
		}
		field.Conversion = conv[0]
		keyText = inner[:convIdx]
	}

	keyPath, err := parseKeyPath(keyText, offset+1)
	if err != nil {
		return nil, err
	}

	keyPath = extractInline(keyPath, field)
	if len(keyPath) == 0 || keyPath[0].Text == "" {
		return nil, &ParseError{
			Kind:   EmptyKeyPath,
			Offset: offset + 1,
		}
	}
	field.KeyPath = keyPath

	if field.HasConstraint {
		if _, err := regexp.Compile("(?:" + field.InlineConstraint + ")"); err != nil {
			return nil, &ParseError{
				Kind:   BadConstraint,
				Offset: offset + 1,
				Detail: err.Error(),
			}
		}
	}

	return field, nil
}

// parseKeyPath splits key-path text into attribute and index components.
// Bracketed index text is scanned to its matching "]" with nesting counted
// and is never split on dots.
func parseKeyPath(text string, baseOffset int) (template.KeyPath, error) {
	var kp template.KeyPath

	i := 0
	start := i
	for i < len(text) && text[i] != '.' && text[i] != '[' {
		i++
	}
	kp = append(kp, template.PathComponent{Text: text[start:i]})

	for i < len(text) {
		switch text[i] {
		case '.':
			i++
			start = i
			for i < len(text) && text[i] != '.' && text[i] != '[' {
				i++
			}
			kp = append(kp, template.PathComponent{Text: text[start:i]})
		case '[':
			depth := 1
			j := i + 1
			for j < len(text) && depth > 0 {
				switch text[j] {
				case '[':
					depth++
				case ']':
					depth--
				}
				j++
			}
			if depth != 0 {
				return nil, &ParseError{
					Kind:   BadBracket,
					Offset: baseOffset + i,
				}
			}
			kp = append(kp, template.PathComponent{Text: text[i+1 : j-1], IsIndex: true})
			i = j
		}
	}

	return kp, nil
}

// extractInline strips trailing marker pairs ("._[literal]", ".~[pattern]")
// from the key-path and records them on the field. Extraction is purely
// syntactic and happens only here, at parse time.
func extractInline(kp template.KeyPath, field *template.FieldRef) template.KeyPath {
	for len(kp) >= 2 {
		last := kp[len(kp)-1]
		prev := kp[len(kp)-2]
		if !last.IsIndex || prev.IsIndex {
			return kp
		}
		switch prev.Text {
		case defaultMarker:
			if field.HasDefault {
				return kp
			}
			field.InlineDefault = last.Text
			field.HasDefault = true
		case constraintMarker:
			if field.HasConstraint {
				return kp
			}
			field.InlineConstraint = last.Text
			field.HasConstraint = true
		default:
			return kp
		}
		kp = kp[:len(kp)-2]
	}
	return kp
}
