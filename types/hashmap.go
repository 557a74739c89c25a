package types

import "sort"

// Encoded map keys carry a one-byte tag so a string and a keyword with the
// same text stay distinct.
const (
	stringTag  = '"'
	keywordTag = ':'
)

// DHashMap maps string and keyword keys to values. Keys are stored in their
// encoded form; use Keys to get them back as values.
type DHashMap struct {
	entries map[string]Data
}

func encodeKey(k Data) (string, error) {
	switch key := k.(type) {
	case DString:
		return string(stringTag) + key.Str, nil
	case DKeyword:
		return string(keywordTag) + key.Name, nil
	}
	return "", Errorf(KindInvalidKey, "hash-map key must be a string or keyword, got %s", TypeName(k))
}

func decodeKey(k string) Data {
	if k[0] == keywordTag {
		return DKeyword{k[1:]}
	}
	return DString{k[1:]}
}

// NewHashMap builds a map from alternating keys and values.
func NewHashMap(kvs ...Data) (*DHashMap, error) {
	m := &DHashMap{map[string]Data{}}
	if err := m.put(kvs); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *DHashMap) put(kvs []Data) error {
	if len(kvs)%2 != 0 {
		return Errorf(KindArity, "hash-map expects key/value pairs; found %d values", len(kvs))
	}
	for i := 0; i < len(kvs); i += 2 {
		k, err := encodeKey(kvs[i])
		if err != nil {
			return err
		}
		m.entries[k] = kvs[i+1]
	}
	return nil
}

func (m *DHashMap) clone() *DHashMap {
	c := &DHashMap{make(map[string]Data, len(m.entries))}
	for k, v := range m.entries {
		c.entries[k] = v
	}
	return c
}

func (m *DHashMap) Len() int {
	return len(m.entries)
}

// Get looks up key. A key of the wrong type is an InvalidKey error.
func (m *DHashMap) Get(key Data) (Data, bool, error) {
	k, err := encodeKey(key)
	if err != nil {
		return nil, false, err
	}
	v, ok := m.entries[k]
	return v, ok, nil
}

// Assoc returns a copy of m with the given pairs added.
func (m *DHashMap) Assoc(kvs ...Data) (*DHashMap, error) {
	c := m.clone()
	if err := c.put(kvs); err != nil {
		return nil, err
	}
	return c, nil
}

// Dissoc returns a copy of m without the given keys.
func (m *DHashMap) Dissoc(keys ...Data) (*DHashMap, error) {
	c := m.clone()
	for _, key := range keys {
		k, err := encodeKey(key)
		if err != nil {
			return nil, err
		}
		delete(c.entries, k)
	}
	return c, nil
}

func (m *DHashMap) sortedKeys() []string {
	ks := make([]string, 0, len(m.entries))
	for k := range m.entries {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// Keys returns the keys in a stable order.
func (m *DHashMap) Keys() []Data {
	out := []Data{}
	for _, k := range m.sortedKeys() {
		out = append(out, decodeKey(k))
	}
	return out
}

// Vals returns the values in the same order as Keys.
func (m *DHashMap) Vals() []Data {
	out := []Data{}
	for _, k := range m.sortedKeys() {
		out = append(out, m.entries[k])
	}
	return out
}

// Each calls fn for every entry in key order.
func (m *DHashMap) Each(fn func(key, value Data) error) error {
	for _, k := range m.sortedKeys() {
		if err := fn(decodeKey(k), m.entries[k]); err != nil {
			return err
		}
	}
	return nil
}
