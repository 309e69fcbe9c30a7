package siteconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// DefaultCategory is the key of the uncategorized sidebar group. The theme
// receives it as a null object key, which serializes as "null".
const DefaultCategory = "null"

// Category is one sidebar group.
type Category struct {
	Key   string
	Pages []string
}

// SidebarCategories maps category keys to page identifiers, preserving the
// order of both categories and pages.
type SidebarCategories []Category

// NewSidebar returns a sidebar with a single default category.
func NewSidebar(pages ...string) SidebarCategories {
	return SidebarCategories{{Key: DefaultCategory, Pages: slices.Clone(pages)}}
}

// Pages returns the pages of category key.
func (s SidebarCategories) Pages(key string) ([]string, bool) {
	for _, c := range s {
		if c.Key == key {
			return c.Pages, true
		}
	}
	return nil, false
}

// Set returns a copy of s with key's pages replaced, appending the category
// when it is new.
func (s SidebarCategories) Set(key string, pages ...string) SidebarCategories {
	out := s.Clone()
	for i := range out {
		if out[i].Key == key {
			out[i].Pages = slices.Clone(pages)
			return out
		}
	}
	return append(out, Category{Key: key, Pages: slices.Clone(pages)})
}

// Keys lists category keys in order.
func (s SidebarCategories) Keys() []string {
	keys := make([]string, len(s))
	for i, c := range s {
		keys[i] = c.Key
	}
	return keys
}

// Clone returns a deep copy of s.
func (s SidebarCategories) Clone() SidebarCategories {
	if s == nil {
		return nil
	}
	out := make(SidebarCategories, len(s))
	for i, c := range s {
		out[i] = Category{Key: c.Key, Pages: slices.Clone(c.Pages)}
	}
	return out
}

// MarshalJSON writes an object whose keys keep the category order.
func (s SidebarCategories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Key)
		if err != nil {
			return nil, err
		}
		pages := c.Pages
		if pages == nil {
			pages = []string{}
		}
		val, err := json.Marshal(pages)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keeping key order.
func (s *SidebarCategories) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("sidebar categories must be an object")
	}
	var out SidebarCategories
	seen := map[string]struct{}{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("offset %d: duplicate sidebar category %q", dec.InputOffset(), key)
		}
		seen[key] = struct{}{}
		var pages []string
		if err := dec.Decode(&pages); err != nil {
			return fmt.Errorf("sidebar category %q: %w", key, err)
		}
		out = append(out, Category{Key: key, Pages: pages})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalYAML emits an ordered mapping node.
func (s SidebarCategories) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, c := range s {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Key}
		if c.Key == DefaultCategory {
			key.Tag = "!!null"
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, p := range c.Pages {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p})
		}
		node.Content = append(node.Content, key, seq)
	}
	return node, nil
}

// UnmarshalYAML reads an ordered mapping. A null key (null, ~ or empty)
// names the default category. Keys must be unique after that mapping, so
// `null:` and `"null":` collide.
func (s *SidebarCategories) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: sidebar categories must be a mapping", node.Line)
	}
	out := make(SidebarCategories, 0, len(node.Content)/2)
	seen := make(map[string]int, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		key := k.Value
		if k.Tag == "!!null" {
			key = DefaultCategory
		}
		if line, dup := seen[key]; dup {
			return fmt.Errorf("line %d: duplicate sidebar category %q (first defined on line %d)", k.Line, key, line)
		}
		seen[key] = k.Line
		var pages []string
		if err := v.Decode(&pages); err != nil {
			return fmt.Errorf("sidebar category %q: %w", key, err)
		}
		out = append(out, Category{Key: key, Pages: pages})
	}
	*s = out
	return nil
}
