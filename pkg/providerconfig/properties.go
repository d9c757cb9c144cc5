// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package providerconfig

import (
	"sort"
	"strings"
)

// Properties holds the accumulated request payload for provider config
// create and update calls. values are either plain strings, booleans,
// nested maps or lists of single key records, matching the wire format
// of the provider config API
type Properties map[string]any

// gets the nested map available against the given key, creating an
// empty one on first access. subsequent writes against the same key
// land in the already existing map
func (p Properties) nestedMap(key string) map[string]any {
	nested, ok := p[key].(map[string]any)
	if !ok {
		nested = map[string]any{}
		p[key] = nested
	}
	return nested
}

// appends the given value to the list stored under key in the provided
// map, creating the list on first use. order of appended entries is
// retained as is
func appendNestedList(m map[string]any, key string, value any) {
	list, _ := m[key].([]any)
	m[key] = append(list, value)
}

// UpdateMask generates the comma separated list of dotted field paths
// currently populated in the properties, as consumed by the update API
// in the updateMask query parameter. paths are emitted sorted to keep
// the mask deterministic. lists are considered leaf fields
func (p Properties) UpdateMask() string {
	paths := maskPaths("", p)
	sort.Strings(paths)
	return strings.Join(paths, ",")
}

func maskPaths(prefix string, m map[string]any) []string {
	var paths []string
	for key, value := range m {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			paths = append(paths, maskPaths(name, nested)...)
			continue
		}
		paths = append(paths, name)
	}
	return paths
}
