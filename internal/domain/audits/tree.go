package audits

// Generic transforms over decoded JSON values (map[string]any, []any,
// scalars). All of them return new structures and never touch the input.

// PruneEmpty strips nil, empty strings, empty slices and maps, and any
// container that becomes empty once its children are pruned. Returns nil
// when the whole value prunes away. Idempotent.
func PruneEmpty(v any) any {
	out, keep := pruneEmpty(v)
	if !keep {
		return nil
	}
	return out
}

func pruneEmpty(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case string:
		if t == "" {
			return nil, false
		}
		return t, true
	case []any:
		out := make([]any, 0, len(t))
		for _, item := range t {
			if p, keep := pruneEmpty(item); keep {
				out = append(out, p)
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			if p, keep := pruneEmpty(item); keep {
				out[k] = p
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	default:
		return v, true
	}
}

// StripKey deep-deletes every entry under the given key name, regardless
// of its value.
func StripKey(v any, key string) any {
	return StripKeys(v, []string{key})
}

// StripKeys deep-deletes every map entry whose key is in the given set.
func StripKeys(v any, keys []string) any {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return stripKeys(v, set)
}

func stripKeys(v any, keys map[string]struct{}) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, 0, len(t))
		for _, item := range t {
			out = append(out, stripKeys(item, keys))
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			if _, drop := keys[k]; drop {
				continue
			}
			out[k] = stripKeys(item, keys)
		}
		return out
	default:
		return v
	}
}
