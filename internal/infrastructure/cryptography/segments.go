package cryptography

import "strings"

// SplitSegments cuts line-oriented text into the units that are encoded
// independently. Blank lines are not encoded on their own: their newlines are
// carried forward and prefixed to the next non-blank line, so every segment
// but the first starts with at least one "\n". Trailing newlines form a last
// segment. Joining the segments gives back text exactly.
func SplitSegments(text string) []string {
	var segments []string
	pending := ""

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			pending += "\n"
		}
		if line == "" {
			continue
		}
		segments = append(segments, pending+line)
		pending = ""
	}

	if pending != "" || len(segments) == 0 {
		segments = append(segments, pending)
	}
	return segments
}
