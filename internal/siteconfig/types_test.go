package siteconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPluginEntry_JSONForms(t *testing.T) {
	b, err := json.Marshal([]PluginEntry{
		Named(SharpPlugin),
		WithOptions(SourceFilesystemPlugin, OptionsMap{"name": "images"}),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `["gatsby-plugin-sharp",{"resolve":"gatsby-source-filesystem","options":{"name":"images"}}]`, string(b))

	var back []PluginEntry
	require.NoError(t, json.Unmarshal(b, &back))
	require.Len(t, back, 2)
	assert.False(t, back[0].HasOptions())
	assert.Equal(t, "images", back[1].Options["name"])
}

func TestPluginEntry_WithNilOptionsKeepsObjectForm(t *testing.T) {
	b, err := json.Marshal(WithOptions("x", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"resolve":"x","options":{}}`, string(b))
}

func TestPluginEntry_YAMLForms(t *testing.T) {
	src := `
- gatsby-plugin-sitemap
- resolve: gatsby-plugin-manifest
  options:
    name: WNS
`
	var entries []PluginEntry
	require.NoError(t, yaml.Unmarshal([]byte(src), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, Named("gatsby-plugin-sitemap"), entries[0])
	assert.Equal(t, "gatsby-plugin-manifest", entries[1].Name)
	assert.Equal(t, "WNS", entries[1].Options["name"])

	var bad []PluginEntry
	assert.Error(t, yaml.Unmarshal([]byte("- [a, b]\n"), &bad))
}

func TestPluginEntry_String(t *testing.T) {
	assert.Equal(t, "gatsby-plugin-sharp", Named(SharpPlugin).String())
	assert.Equal(t, "x(1 options)", WithOptions("x", OptionsMap{"a": 1}).String())
}
