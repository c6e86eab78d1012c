package content

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

var errUnterminated = errors.New("front matter is not terminated by a --- line")

// SplitFrontMatter separates a leading YAML front matter block, delimited by
// --- lines, from the body. Content without front matter yields empty
// metadata and the whole text as body.
func SplitFrontMatter(raw []byte) (map[string]any, string, error) {
	text := strings.TrimPrefix(string(raw), "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	if strings.TrimRight(lines[0], " \t") != fence {
		return map[string]any{}, text, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == fence {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, "", errUnterminated
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &doc); err != nil {
		return nil, "", err
	}
	keepTimestampsAsText(&doc)

	var meta map[string]any
	if doc.Kind != 0 {
		if err := doc.Decode(&meta); err != nil {
			return nil, "", err
		}
	}
	if meta == nil {
		meta = map[string]any{}
	}

	return meta, strings.Join(lines[end+1:], "\n"), nil
}

// keepTimestampsAsText retags implicit timestamp scalars as strings so that
// values like "period: 2024-03-01" decode verbatim instead of as time.Time.
func keepTimestampsAsText(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!timestamp" {
		n.Tag = "!!str"
	}
	for _, child := range n.Content {
		keepTimestampsAsText(child)
	}
}
