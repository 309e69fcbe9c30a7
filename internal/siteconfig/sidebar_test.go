package siteconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSidebar_JSONKeepsOrder(t *testing.T) {
	s := NewSidebar("index").Set("Guides", "install", "usage").Set("API", "graphql")
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"null":["index"],"Guides":["install","usage"],"API":["graphql"]}`, string(b))

	var back SidebarCategories
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, s, back)
}

func TestSidebar_YAMLNullKey(t *testing.T) {
	var s SidebarCategories
	src := "null:\n  - index\nGuides:\n  - install\n~:\n  - other\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &s))
	assert.Equal(t, []string{DefaultCategory, "Guides", DefaultCategory}, s.Keys())

	out, err := yaml.Marshal(NewSidebar("index").Set("Guides", "install"))
	require.NoError(t, err)
	assert.Equal(t, "null:\n    - index\nGuides:\n    - install\n", string(out))
}

func TestSidebar_SetReplacesInPlace(t *testing.T) {
	s := NewSidebar("index").Set("Guides", "a")
	s2 := s.Set(DefaultCategory, "home")
	assert.Equal(t, []string{DefaultCategory, "Guides"}, s2.Keys())
	pages, _ := s2.Pages(DefaultCategory)
	assert.Equal(t, []string{"home"}, pages)
	pages, _ = s.Pages(DefaultCategory)
	assert.Equal(t, []string{"index"}, pages)
}

func TestSidebar_EmptyPagesMarshalAsArray(t *testing.T) {
	b, err := json.Marshal(SidebarCategories{{Key: "x"}})
	require.NoError(t, err)
	assert.Equal(t, `{"x":[]}`, string(b))
}

func TestSidebar_YAMLRejectsDuplicateKeys(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"null and tilde", "null: [a]\n~: [b]\n", `line 2: duplicate sidebar category "null" (first defined on line 1)`},
		{"null and quoted null", "Guides: [x]\nnull: [a]\n\"null\": [c]\n", `line 3: duplicate sidebar category "null" (first defined on line 2)`},
		{"repeated name", "Guides: [a]\nAPI: [b]\nGuides: [c]\n", `line 3: duplicate sidebar category "Guides" (first defined on line 1)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s SidebarCategories
			err := yaml.Unmarshal([]byte(tt.doc), &s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSidebar_JSONRejectsDuplicateKeys(t *testing.T) {
	var s SidebarCategories
	err := json.Unmarshal([]byte(`{"null":["a"],"API":["b"],"null":["c"]}`), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate sidebar category "null"`)
}
