package markdown

import "strings"

// Block is a generated region of a note delimited by marker lines. Text
// outside the markers belongs to the user and survives regeneration.
type Block struct {
	Start string
	End   string
}

// Replace swaps the block's current content for generated, appending the
// block when the note does not have one yet.
func (b Block) Replace(body, generated string) string {
	start := strings.Index(body, b.Start)
	end := -1
	if start >= 0 {
		if rel := strings.Index(body[start:], b.End); rel >= 0 {
			end = start + rel
		}
	}
	block := b.Start + "\n" + strings.TrimRight(generated, "\n") + "\n" + b.End

	if start >= 0 && end > start {
		end += len(b.End)
		return body[:start] + block + body[end:]
	}

	if strings.TrimSpace(body) == "" {
		return block + "\n"
	}
	if strings.HasSuffix(body, "\n") {
		return body + "\n" + block + "\n"
	}
	return body + "\n\n" + block + "\n"
}

// Content returns what is currently between the markers.
func (b Block) Content(body string) (string, bool) {
	start := strings.Index(body, b.Start)
	if start < 0 {
		return "", false
	}
	inner := body[start+len(b.Start):]
	end := strings.Index(inner, b.End)
	if end < 0 {
		return "", false
	}
	return strings.Trim(inner[:end], "\n"), true
}
