package markdown

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const separator = "---\n"

// Frontmatter is the decoded YAML header of a note.
type Frontmatter map[string]any

// Split separates the YAML header from the note body. Notes without a header
// yield an empty Frontmatter and the content unchanged.
func Split(content string) (Frontmatter, string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, separator) {
		return Frontmatter{}, content, nil
	}
	rest := strings.TrimPrefix(content, separator)
	var raw, body string
	switch idx := strings.Index(rest, "\n---\n"); {
	case idx >= 0:
		raw, body = rest[:idx], rest[idx+len("\n---\n"):]
	case strings.HasSuffix(rest, "\n---"):
		raw = strings.TrimSuffix(rest, "\n---")
	default:
		return nil, "", fmt.Errorf("invalid frontmatter: missing closing separator")
	}

	meta := Frontmatter{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, "", fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return meta, body, nil
}

func Render(meta Frontmatter, body string) (string, error) {
	raw, err := yaml.Marshal(map[string]any(meta))
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	buf := bytes.Buffer{}
	buf.WriteString(separator)
	buf.Write(raw)
	buf.WriteString(separator)
	if !strings.HasPrefix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString(body)
	return buf.String(), nil
}

func (f Frontmatter) String(key string) string {
	switch x := f[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	default:
		return fmt.Sprint(x)
	}
}

// Int reads whole numbers written either bare or quoted; anything else is 0.
func (f Frontmatter) Int(key string) int {
	switch x := f[key].(type) {
	case int:
		return x
	case int64:
		return int(x)
	case float64:
		return int(x)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(x))
		return n
	default:
		return 0
	}
}

func (f Frontmatter) Bool(key string) bool {
	switch x := f[key].(type) {
	case bool:
		return x
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(x))
		return b
	default:
		return false
	}
}
