package siteconfig

import "slices"

// Override is a single local option applied on top of the base options.
type Override struct {
	Key   string
	Value any
}

// MergeOptions copies base and then writes each override in order. Later
// writes win, so an override always replaces a colliding base key and a
// repeated override key keeps its last value. Neither base nor the override
// values are aliased by the result.
func MergeOptions(base OptionsMap, overrides ...Override) OptionsMap {
	out := base.Clone()
	if out == nil {
		out = make(OptionsMap, len(overrides))
	}
	for _, o := range overrides {
		out[o.Key] = cloneValue(o.Value)
	}
	return out
}

// cloneValue deep-copies the container types that appear in options maps.
// Scalars are returned as is.
func cloneValue(v any) any {
	switch t := v.(type) {
	case OptionsMap:
		return t.Clone()
	case map[string]any:
		return map[string]any(OptionsMap(t).Clone())
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return slices.Clone(t)
	case SidebarCategories:
		return t.Clone()
	case []PluginEntry:
		out := make([]PluginEntry, len(t))
		for i, p := range t {
			out[i] = p.Clone()
		}
		return out
	default:
		return v
	}
}
