package golfgenius

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// unwrap normalises a response into a list of items for the given wrapper key.
//
//	[{"season": {...}}, ...]  -> the inner objects
//	{"seasons": [...]}        -> the list
//	{"season": {...}}         -> a single item
//	{...}                     -> the object itself
//
// List entries without the wrapper key are kept as-is. Scalars yield nothing.
func unwrap(data []byte, key string) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to parse %s list: %w", key, err)
		}

		out := make([]json.RawMessage, 0, len(items))
		for _, item := range items {
			var wrapper map[string]json.RawMessage
			if err := json.Unmarshal(item, &wrapper); err == nil {
				if inner, ok := wrapper[key]; ok {
					out = append(out, inner)
					continue
				}
			}
			out = append(out, item)
		}
		return out, nil

	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, fmt.Errorf("failed to parse %s object: %w", key, err)
		}

		if plural, ok := obj[key+"s"]; ok {
			var items []json.RawMessage
			if err := json.Unmarshal(plural, &items); err != nil {
				return nil, fmt.Errorf("failed to parse %ss: %w", key, err)
			}
			return items, nil
		}
		if inner, ok := obj[key]; ok {
			return []json.RawMessage{inner}, nil
		}
		return []json.RawMessage{trimmed}, nil
	}

	return nil, nil
}

// decodeList unwraps data and decodes every item into T
func decodeList[T any](data []byte, key string) ([]T, error) {
	items, err := unwrap(data, key)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			return nil, fmt.Errorf("failed to decode %s %d: %w", key, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
