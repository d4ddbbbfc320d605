package config

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Parser converts between the nested JSON file layout and flat dotted keys.
//
//	{"init": {"defaultbranch": "master"}}  <->  init.defaultbranch = master
type Parser struct{}

// Parse flattens JSON content. Non-string scalars are rendered with %v.
func (p *Parser) Parse(content string) (map[string]string, error) {
	result := make(map[string]string)
	if strings.TrimSpace(content) == "" {
		return result, nil
	}

	var root map[string]any
	if err := json.Unmarshal([]byte(content), &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := p.flatten("", root, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Parser) flatten(prefix string, section map[string]any, out map[string]string) error {
	for key, value := range section {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			if err := p.flatten(full, v, out); err != nil {
				return err
			}
		case []any:
			return fmt.Errorf("%w: key %s holds a list", ErrInvalidFormat, full)
		case string:
			out[strings.ToLower(full)] = v
		case nil:
		default:
			out[strings.ToLower(full)] = fmt.Sprintf("%v", v)
		}
	}
	return nil
}

// Serialize nests flat keys back into the file layout.
func (p *Parser) Serialize(values map[string]string) (string, error) {
	root := make(map[string]any)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		parts := strings.Split(key, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				if _, taken := node[part]; taken {
					return "", fmt.Errorf("%w: key %s conflicts with a value", ErrInvalidFormat, key)
				}
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		leaf := parts[len(parts)-1]
		if _, taken := node[leaf].(map[string]any); taken {
			return "", fmt.Errorf("%w: key %s conflicts with a section", ErrInvalidFormat, key)
		}
		node[leaf] = values[key]
	}

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
