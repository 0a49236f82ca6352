package pipeline

import (
	"encoding/json"
	"strings"
)

// Normalize turns model output into the bytes of a single JSON object.
//
// Order of attempts: direct parse (structured mode only), parse after
// stripping markdown fences, the first balanced {...} span that parses, and
// finally the span between the first '{' and the last '}'.
func Normalize(text string, structured bool) ([]byte, error) {
	trimmed := strings.TrimSpace(text)
	if structured {
		if obj, ok := asObject(trimmed); ok {
			return obj, nil
		}
	}

	unfenced := stripFences(trimmed)
	if obj, ok := asObject(unfenced); ok {
		return obj, nil
	}
	if obj, ok := scanBalanced(unfenced); ok {
		return obj, nil
	}
	if obj, ok := greedySpan(unfenced); ok {
		return obj, nil
	}
	return nil, &MalformedResponseError{Raw: text}
}

func asObject(s string) ([]byte, bool) {
	if !strings.HasPrefix(s, "{") {
		return nil, false
	}
	b := []byte(s)
	if !json.Valid(b) {
		return nil, false
	}
	return b, true
}

func stripFences(s string) string {
	if rest, ok := strings.CutPrefix(s, "```"); ok {
		// drop the info string, "```json\n" or a bare "```\n"
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			rest = rest[i+1:]
		} else {
			rest = strings.TrimPrefix(rest, "json")
		}
		s = rest
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// scanBalanced returns the first brace-balanced span that is valid JSON.
// Braces inside string literals are ignored.
func scanBalanced(s string) ([]byte, bool) {
	start := strings.IndexByte(s, '{')
	for start >= 0 {
		if end := closingBrace(s, start); end > 0 {
			if obj, ok := asObject(s[start : end+1]); ok {
				return obj, true
			}
		}
		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return nil, false
}

// closingBrace returns the index of the '}' matching the '{' at start, or -1.
// Byte-wise scanning is safe: '{', '}', '"' and '\\' never occur inside a
// multi-byte UTF-8 sequence.
func closingBrace(s string, start int) int {
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func greedySpan(s string) ([]byte, bool) {
	first, last := strings.IndexByte(s, '{'), strings.LastIndexByte(s, '}')
	if first < 0 || last <= first {
		return nil, false
	}
	return asObject(s[first : last+1])
}
