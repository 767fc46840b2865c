// Package contract checks transformed output against the data contract: a
// JSON-Schema subset restricted to type, properties, required, and items.
// Validation is advisory — violations are reported as path-qualified strings
// for logging, never as errors that halt the pipeline.
package contract

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
)

// Load reads a contract schema from disk and decodes it as generic JSON.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contract: %w", err)
	}
	var schema any
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("decode contract: %w", err)
	}
	return schema, nil
}

// Validate recursively checks a decoded JSON instance against the schema and
// returns a flat, ordered list of violations. An empty list is the success
// signal; Validate itself never fails. A schema that is not a mapping is a
// no-op.
func Validate(instance any, schema any) []string {
	errs := []string{}
	validate(instance, schema, "root", &errs)
	return errs
}

func validate(instance any, schema any, path string, errs *[]string) {
	schemaMap, ok := schema.(map[string]any)
	if !ok {
		return
	}

	if rawType, present := schemaMap["type"]; present {
		types := typeList(rawType)
		switch {
		case contains(types, "null") && instance == nil:
			// ok
		case contains(types, "object") && isObject(instance):
			// recurse below
		case contains(types, "array") && isArray(instance):
			// recurse below
		case containsPrimitive(types):
			if !primitiveMatches(instance, types) {
				*errs = append(*errs, typeError(path, types, instance))
				return
			}
		case !isObject(instance) && !isArray(instance):
			*errs = append(*errs, typeError(path, types, instance))
			return
		}
	}

	if obj, ok := instance.(map[string]any); ok {
		if required, ok := schemaMap["required"].([]any); ok {
			for _, req := range required {
				name, ok := req.(string)
				if !ok {
					continue
				}
				if _, present := obj[name]; !present {
					*errs = append(*errs, fmt.Sprintf("%s: missing required key '%s'", path, name))
				}
			}
		}
		if props, ok := schemaMap["properties"].(map[string]any); ok {
			// Properties in schema order would be nondeterministic over a Go
			// map; instance paths are what matter, so iterate sorted keys.
			for _, key := range sortedKeys(props) {
				if value, present := obj[key]; present {
					validate(value, props[key], path+"."+key, errs)
				}
			}
		}
		return
	}

	if arr, ok := instance.([]any); ok {
		if items, ok := schemaMap["items"]; ok {
			for i, item := range arr {
				validate(item, items, fmt.Sprintf("%s[%d]", path, i), errs)
			}
		}
	}
}

// typeList normalizes the schema "type" keyword to a list of type names.
func typeList(raw any) []string {
	switch v := raw.(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func isObject(instance any) bool {
	_, ok := instance.(map[string]any)
	return ok
}

func isArray(instance any) bool {
	_, ok := instance.([]any)
	return ok
}

func contains(types []string, name string) bool {
	for _, t := range types {
		if t == name {
			return true
		}
	}
	return false
}

func containsPrimitive(types []string) bool {
	for _, t := range types {
		if t == "string" || t == "number" || t == "integer" {
			return true
		}
	}
	return false
}

// primitiveMatches checks string/number/integer kinds exactly. Decoded JSON
// numbers are float64; "integer" accepts a float64 with no fractional part.
func primitiveMatches(instance any, types []string) bool {
	for _, t := range types {
		switch t {
		case "null":
			if instance == nil {
				return true
			}
		case "string":
			if _, ok := instance.(string); ok {
				return true
			}
		case "number":
			if _, ok := instance.(float64); ok {
				return true
			}
		case "integer":
			if n, ok := instance.(float64); ok && n == math.Trunc(n) {
				return true
			}
		}
	}
	return false
}

// kindName reports the JSON kind of a decoded value for error messages.
func kindName(instance any) string {
	switch instance.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case float64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", instance)
	}
}

func typeError(path string, types []string, instance any) string {
	return fmt.Sprintf("%s: expected [%s], got %s", path, strings.Join(types, " "), kindName(instance))
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
