package siteconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeOptions_LastWriteWins(t *testing.T) {
	base := OptionsMap{"a": 1, "b": 2}
	got := MergeOptions(base,
		Override{Key: "b", Value: 3},
		Override{Key: "c", Value: 4},
		Override{Key: "c", Value: 5},
	)
	assert.Equal(t, OptionsMap{"a": 1, "b": 3, "c": 5}, got)
	assert.Equal(t, OptionsMap{"a": 1, "b": 2}, base)
}

func TestMergeOptions_NilBase(t *testing.T) {
	got := MergeOptions(nil, Override{Key: "root", Value: "/x"})
	assert.Equal(t, OptionsMap{"root": "/x"}, got)
	assert.NotNil(t, MergeOptions(nil))
}

func TestMergeOptions_ReplacesNestedMaps(t *testing.T) {
	base := OptionsMap{"nav": map[string]any{"a": 1, "b": 2}}
	got := MergeOptions(base, Override{Key: "nav", Value: map[string]any{"c": 3}})
	assert.Equal(t, map[string]any{"c": 3}, got["nav"])
}

func TestMergeOptions_DeepCopiesContainers(t *testing.T) {
	list := []any{map[string]any{"x": 1}}
	names := []string{"a"}
	base := OptionsMap{"list": list, "names": names}

	got := MergeOptions(base)
	got["list"].([]any)[0].(map[string]any)["x"] = 2
	got["names"].([]string)[0] = "b"

	assert.Equal(t, 1, list[0].(map[string]any)["x"])
	assert.Equal(t, "a", names[0])
}
