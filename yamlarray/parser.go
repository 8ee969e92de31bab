// Package yamlarray recognizes a YAML sequence of mappings and flattens it
// into a single table, mirroring the jsonarray flattening contract: headers
// are the union of all mapping keys in first-seen order, one row per mapping.
package yamlarray

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Santiago-vgs/Format-King/model"
)

// TableName is the name given to the single table a YAML sequence produces.
const TableName = "YAML Data"

// Detect reports whether text is a YAML sequence of mappings: the trimmed
// text starts with a "- " list item, parses as YAML, and the document root is
// a non-empty sequence whose first element is a mapping. A parse failure is a
// non-match.
func Detect(text string) bool {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "- ") && !strings.HasPrefix(trimmed, "-\n") {
		return false
	}
	seq := parseSequence(trimmed)
	return seq != nil && len(seq.Content) > 0 && seq.Content[0].Kind == yaml.MappingNode
}

// Parse flattens a YAML sequence of mappings into one table. Non-mapping
// elements are skipped. Null values and missing keys map to the empty string;
// nested sequences and mappings are serialized back to YAML text;
// scalars keep their literal text.
func Parse(text string) *model.TableSet {
	set := &model.TableSet{Format: "yaml"}

	seq := parseSequence(strings.TrimSpace(text))
	if seq == nil {
		return set
	}

	// Union of keys in first-seen document order; yaml.Node preserves it.
	var headers []string
	seen := make(map[string]bool)
	for _, elem := range seq.Content {
		if elem.Kind != yaml.MappingNode {
			continue
		}
		for i := 0; i+1 < len(elem.Content); i += 2 {
			key := elem.Content[i].Value
			if !seen[key] {
				seen[key] = true
				headers = append(headers, key)
			}
		}
	}

	var rows []model.Row
	for _, elem := range seq.Content {
		if elem.Kind != yaml.MappingNode {
			continue
		}
		values := make(map[string]*yaml.Node, len(elem.Content)/2)
		for i := 0; i+1 < len(elem.Content); i += 2 {
			values[elem.Content[i].Value] = elem.Content[i+1]
		}
		row := make(model.Row, len(headers))
		for i, h := range headers {
			row[i] = cellValue(values[h])
		}
		rows = append(rows, row)
	}
	if len(headers) == 0 || len(rows) == 0 {
		return set
	}

	set.Add(model.NewTable(TableName, headers, rows))
	return set
}

// parseSequence returns the document root when it is a sequence, else nil.
func parseSequence(text string) *yaml.Node {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil
	}
	return root
}

// cellValue converts one YAML value node to its cell representation.
func cellValue(n *yaml.Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return ""
		}
		return n.Value
	case yaml.MappingNode, yaml.SequenceNode:
		out, err := yaml.Marshal(n)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(out))
	default:
		return ""
	}
}
