package recolor

import (
	"bytes"
	"encoding/json"
)

// ColorMap maps source colors to replacement colors. Keys keep their insertion order, which is used when listing or encoding the map.
type ColorMap struct {
	keys []string
	vals map[string]string
}

// NewColorMap returns a ColorMap filled with key/value pairs. It panics if an odd number of strings is given.
func NewColorMap(pairs ...string) *ColorMap {
	if len(pairs)%2 != 0 {
		panic("recolor: odd number of arguments to NewColorMap")
	}
	cm := &ColorMap{
		keys: make([]string, 0, len(pairs)/2),
		vals: make(map[string]string, len(pairs)/2),
	}
	for i := 0; i < len(pairs); i += 2 {
		cm.Add(pairs[i], pairs[i+1])
	}
	return cm
}

// DefaultColorMap returns the built-in pastel palette.
// The named colors gray and white are never matched by FillPattern but are kept as entries.
func DefaultColorMap() *ColorMap {
	return NewColorMap(
		"rgb(124, 190, 178)", "rgb(172, 225, 217)", // pastel teal
		"rgb(217, 167, 81)", "rgb(242, 210, 151)", // pastel orange
		"gray", "rgb(211, 211, 211)",
		"white", "rgb(255, 255, 255)",
		"rgb(200, 200, 200)", "rgb(230, 230, 230)", // lighter gray
		"rgb(148, 167, 203)", "rgb(190, 200, 230)", // pastel blue
	)
}

// Add sets the replacement for key. An existing key keeps its position.
func (cm *ColorMap) Add(key, val string) {
	if cm.vals == nil {
		cm.vals = map[string]string{}
	}
	if _, ok := cm.vals[key]; !ok {
		cm.keys = append(cm.keys, key)
	}
	cm.vals[key] = val
}

// Get returns the replacement for key. Keys are compared byte for byte.
func (cm *ColorMap) Get(key string) (string, bool) {
	if cm == nil {
		return "", false
	}
	val, ok := cm.vals[key]
	return val, ok
}

// Len returns the number of entries.
func (cm *ColorMap) Len() int {
	if cm == nil {
		return 0
	}
	return len(cm.keys)
}

// Keys returns the keys in insertion order.
func (cm *ColorMap) Keys() []string {
	if cm == nil {
		return nil
	}
	keys := make([]string, len(cm.keys))
	copy(keys, cm.keys)
	return keys
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (cm *ColorMap) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, key := range cm.Keys() {
		if i != 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(cm.vals[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
