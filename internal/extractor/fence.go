package extractor

import (
	"regexp"
	"strings"
)

// The prompt forbids code fences, but the model sometimes wraps its output in
// ``` or ```json anyway, even with a JSON response MIME type requested.
var fenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*\\n?(.*?)\\n?\\s*```$")

// StripFence removes a surrounding markdown code fence from s, if present.
func StripFence(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}
