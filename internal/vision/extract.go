package vision

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fenceMarker matches Markdown code-fence openers and closers, with or
// without a json language tag.
var fenceMarker = regexp.MustCompile("(?i)```(?:json)?")

// stripFences removes Markdown code-fence markers so a fenced JSON payload
// scans like plain text.
func stripFences(s string) string {
	return strings.TrimSpace(fenceMarker.ReplaceAllString(s, ""))
}

// ExtractJSON scans text for the first balanced JSON object that parses and
// contains requiredField at the top level, and returns it verbatim. Model
// responses often wrap the payload in prose or code fences and may contain
// other {...} substrings (example JSON, notation); those candidates are
// skipped. The brace walk tracks string quoting and backslash escapes so
// braces inside strings do not count. Returns ("", false) when no candidate
// satisfies, including truncated objects whose braces never balance.
func ExtractJSON(text, requiredField string) (string, bool) {
	text = stripFences(text)

	searchIdx := 0
	for {
		rel := strings.IndexByte(text[searchIdx:], '{')
		if rel < 0 {
			return "", false
		}
		start := searchIdx + rel

		depth := 0
		inString := false
		escaped := false
		closed := false

		for i := start; i < len(text); i++ {
			c := text[i]
			if escaped {
				escaped = false
				continue
			}
			switch {
			case c == '\\':
				escaped = true
			case c == '"':
				inString = !inString
			case inString:
				// Braces inside strings are literal.
			case c == '{':
				depth++
			case c == '}':
				depth--
				if depth == 0 {
					candidate := text[start : i+1]
					var obj map[string]json.RawMessage
					if err := json.Unmarshal([]byte(candidate), &obj); err == nil {
						if _, present := obj[requiredField]; present {
							return candidate, true
						}
					}
					searchIdx = i + 1
					closed = true
				}
			}
			if closed {
				break
			}
		}

		if !closed {
			// Braces never balanced: the remainder is malformed or truncated.
			return "", false
		}
	}
}
