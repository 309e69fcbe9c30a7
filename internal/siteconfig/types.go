package siteconfig

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Plugin names understood by the site build.
const (
	ThemePlugin            = "gatsby-theme-apollo-docs"
	SourceFilesystemPlugin = "gatsby-source-filesystem"
	SharpPlugin            = "gatsby-plugin-sharp"
	TransformerSharpPlugin = "gatsby-transformer-sharp"
)

// OptionsMap is a plugin options object.
type OptionsMap map[string]any

// Clone returns a deep copy of m.
func (m OptionsMap) Clone() OptionsMap {
	if m == nil {
		return nil
	}
	out := make(OptionsMap, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

// PluginEntry is one step of the plugin pipeline. An entry without options is
// serialized as its bare name.
type PluginEntry struct {
	Name    string
	Options OptionsMap
}

// Named returns a name-only plugin entry.
func Named(name string) PluginEntry {
	return PluginEntry{Name: name}
}

// WithOptions returns a plugin entry parameterized by opts.
func WithOptions(name string, opts OptionsMap) PluginEntry {
	if opts == nil {
		opts = OptionsMap{}
	}
	return PluginEntry{Name: name, Options: opts}
}

// HasOptions reports whether the entry carries an options object.
func (p PluginEntry) HasOptions() bool { return p.Options != nil }

// Clone returns a copy of p that shares no maps with it.
func (p PluginEntry) Clone() PluginEntry {
	return PluginEntry{Name: p.Name, Options: p.Options.Clone()}
}

func (p PluginEntry) String() string {
	if p.HasOptions() {
		return fmt.Sprintf("%s(%d options)", p.Name, len(p.Options))
	}
	return p.Name
}

type resolvedPlugin struct {
	Resolve string     `json:"resolve" yaml:"resolve"`
	Options OptionsMap `json:"options" yaml:"options"`
}

// MarshalJSON emits either "name" or {"resolve": name, "options": {...}}.
func (p PluginEntry) MarshalJSON() ([]byte, error) {
	if !p.HasOptions() {
		return json.Marshal(p.Name)
	}
	return json.Marshal(resolvedPlugin{Resolve: p.Name, Options: p.Options})
}

// UnmarshalJSON accepts both serialized forms.
func (p *PluginEntry) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*p = Named(name)
		return nil
	}
	var rp resolvedPlugin
	if err := json.Unmarshal(data, &rp); err != nil {
		return fmt.Errorf("plugin entry must be a name or {resolve, options}: %w", err)
	}
	*p = WithOptions(rp.Resolve, rp.Options)
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (p PluginEntry) MarshalYAML() (any, error) {
	if !p.HasOptions() {
		return p.Name, nil
	}
	return resolvedPlugin{Resolve: p.Name, Options: p.Options}, nil
}

// UnmarshalYAML accepts a scalar name or a {resolve, options} mapping.
func (p *PluginEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*p = Named(node.Value)
		return nil
	case yaml.MappingNode:
		var rp resolvedPlugin
		if err := node.Decode(&rp); err != nil {
			return err
		}
		*p = WithOptions(rp.Resolve, rp.Options)
		return nil
	default:
		return fmt.Errorf("line %d: plugin entry must be a name or {resolve, options}", node.Line)
	}
}

// SiteConfig is the record consumed by the site build.
type SiteConfig struct {
	PathPrefix string        `json:"pathPrefix" yaml:"pathPrefix"`
	Plugins    []PluginEntry `json:"plugins" yaml:"plugins"`
}

// Plugin returns the first plugin entry named name.
func (c SiteConfig) Plugin(name string) (PluginEntry, bool) {
	for _, p := range c.Plugins {
		if p.Name == name {
			return p, true
		}
	}
	return PluginEntry{}, false
}

// PluginNames lists plugin names in pipeline order.
func (c SiteConfig) PluginNames() []string {
	names := make([]string, len(c.Plugins))
	for i, p := range c.Plugins {
		names[i] = p.Name
	}
	return names
}
