package bus

import "sort"

// Reply decoding helpers. The production client hands back the types the
// underlying binding produces; the scripted client hands back whatever a test
// loaded. Both shapes are accepted so fixtures can stay simple.

func asStrings(v interface{}) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func asOwners(v interface{}) ([]Owner, bool) {
	switch t := v.(type) {
	case []Owner:
		return t, true
	case map[string][]string:
		owners := make([]Owner, 0, len(t))
		for service, ifaces := range t {
			owners = append(owners, Owner{Service: service, Interfaces: ifaces})
		}
		// map order is not stable; sort so callers see a deterministic view
		sort.Slice(owners, func(i, j int) bool { return owners[i].Service < owners[j].Service })
		return owners, true
	}
	return nil, false
}

// AsString decodes a property value expected to be a string.
func AsString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsUint64 decodes a property value expected to be an unsigned 64-bit integer.
func AsUint64(v interface{}) (uint64, bool) {
	u, ok := v.(uint64)
	return u, ok
}

// AsAssociations decodes a property value expected to be a list of
// (forward, reverse, endpoint) association tuples.
func AsAssociations(v interface{}) ([]Association, bool) {
	switch t := v.(type) {
	case []Association:
		return t, true
	case [][]interface{}:
		out := make([]Association, 0, len(t))
		for _, tuple := range t {
			if len(tuple) != 3 {
				return nil, false
			}
			fwd, ok1 := tuple[0].(string)
			rev, ok2 := tuple[1].(string)
			end, ok3 := tuple[2].(string)
			if !ok1 || !ok2 || !ok3 {
				return nil, false
			}
			out = append(out, Association{Forward: fwd, Reverse: rev, Endpoint: ObjectPath(end)})
		}
		return out, true
	}
	return nil, false
}
