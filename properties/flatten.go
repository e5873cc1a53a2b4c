package properties

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flatten converts a decoded YAML/JSON document into a flat mapping with
// dotted-path keys. Nested mappings extend the key path; sequences of
// scalars collapse into one comma-joined value. A sequence holding
// mappings or nested sequences is flattened element by element instead,
// with the zero-based index as a key segment (servers.0.host).
func flatten(root map[string]any) map[string]string {
	out := make(map[string]string, len(root))
	flattenInto(out, "", root)

	return out
}

func flattenInto(dst map[string]string, prefix string, v any) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			flattenInto(dst, joinKey(prefix, k), child)
		}
	case map[any]any:
		for k, child := range val {
			flattenInto(dst, joinKey(prefix, scalar(k)), child)
		}
	case []any:
		if !scalarSequence(val) {
			for i, elem := range val {
				flattenInto(dst, joinKey(prefix, strconv.Itoa(i)), elem)
			}
			return
		}
		parts := make([]string, 0, len(val))
		for _, elem := range val {
			parts = append(parts, scalar(elem))
		}
		dst[prefix] = strings.Join(parts, ",")
	default:
		dst[prefix] = scalar(val)
	}
}

// scalarSequence reports whether every element is a leaf value.
func scalarSequence(seq []any) bool {
	for _, elem := range seq {
		switch elem.(type) {
		case map[string]any, map[any]any, []any:
			return false
		}
	}

	return true
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}

// scalar renders a decoded leaf value in its canonical string form.
func scalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
