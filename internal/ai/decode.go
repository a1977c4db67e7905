package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when the model reply contains no JSON object
// at all.
var ErrNoJSONObject = errors.New("no JSON object in model reply")

// DecodeLoose is the best-effort structured decode for model replies. The
// model is asked for bare JSON but routinely wraps it in markdown fences or
// surrounds it with prose, so the heuristic is: strip code-fence markers,
// keep the substring between the first '{' and the last '}', and when the
// closing brace is missing entirely, append one.
func DecodeLoose(raw string, v any) error {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	first := strings.Index(s, "{")
	if first == -1 {
		return ErrNoJSONObject
	}
	last := strings.LastIndex(s, "}")
	if last > first {
		s = s[first : last+1]
	} else {
		s = strings.TrimSpace(s[first:]) + "}"
	}

	return json.Unmarshal([]byte(s), v)
}
