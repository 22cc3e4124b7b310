package model

import (
	"bytes"
	"encoding/json"
	"sort"
)

// ResourceRecord holds one NIM object's attributes (Rstate, location, server,
// type, ...). Later duplicates of a key overwrite earlier ones.
type ResourceRecord map[string]string

// SortedKeys returns the record's attribute names in lexical order.
func (r ResourceRecord) SortedKeys() []string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ResourceCatalog maps resource names to their records, preserving the order
// in which resources appeared in the lsnim output.
type ResourceCatalog struct {
	names   []string
	records map[string]ResourceRecord
}

// NewResourceCatalog returns an empty catalog.
func NewResourceCatalog() *ResourceCatalog {
	return &ResourceCatalog{records: make(map[string]ResourceRecord)}
}

// Set stores a record under name. A repeated name keeps its original position.
func (c *ResourceCatalog) Set(name string, record ResourceRecord) {
	if c.records == nil {
		c.records = make(map[string]ResourceRecord)
	}
	if _, exists := c.records[name]; !exists {
		c.names = append(c.names, name)
	}
	c.records[name] = record
}

// Get returns the record for name, if present.
func (c *ResourceCatalog) Get(name string) (ResourceRecord, bool) {
	if c == nil {
		return nil, false
	}
	record, ok := c.records[name]
	return record, ok
}

// Names returns resource names in source order.
func (c *ResourceCatalog) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}

// Len reports the number of resources in the catalog.
func (c *ResourceCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// MarshalJSON emits the catalog as an object whose keys follow source order.
func (c *ResourceCatalog) MarshalJSON() ([]byte, error) {
	if c == nil || len(c.names) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.records[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
