package gamedb

import (
	"fmt"
	"sort"
)

type slotValue struct {
	Slot  uint32
	Value int32
}

type slotName struct {
	Slot uint32
	Name string
}

// NamedValues is a bidirectional mapping between (slot, raw value) and
// (slot, symbolic name) pairs for one instruction. It is a bijection: under
// a given slot no two values share a name and no two names share a value.
// Both directions are built once at load time and never mutated.
type NamedValues struct {
	names  map[slotValue]string
	values map[slotName]int32
}

type namedValueEntry struct {
	Slot  uint32 `yaml:"slot"`
	Value int32  `yaml:"value"`
	Name  string `yaml:"name"`
}

// UnmarshalYAML builds both lookup directions from the declared entry list
// and rejects any entry that would break the bijection.
func (nv *NamedValues) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var entries []namedValueEntry
	if err := unmarshal(&entries); err != nil {
		return err
	}

	nv.names = make(map[slotValue]string, len(entries))
	nv.values = make(map[slotName]int32, len(entries))
	for _, e := range entries {
		sv := slotValue{Slot: e.Slot, Value: e.Value}
		sn := slotName{Slot: e.Slot, Name: e.Name}
		if _, ok := nv.names[sv]; ok {
			return fmt.Errorf("duplicate named value %d in slot %d", e.Value, e.Slot)
		}
		if _, ok := nv.values[sn]; ok {
			return fmt.Errorf("duplicate value name %q in slot %d", e.Name, e.Slot)
		}
		nv.names[sv] = e.Name
		nv.values[sn] = e.Value
	}
	return nil
}

// MarshalYAML emits the entry list in slot order for stable output.
func (nv NamedValues) MarshalYAML() (interface{}, error) {
	entries := make([]namedValueEntry, 0, len(nv.names))
	for sv, name := range nv.names {
		entries = append(entries, namedValueEntry{Slot: sv.Slot, Value: sv.Value, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Slot != entries[j].Slot {
			return entries[i].Slot < entries[j].Slot
		}
		return entries[i].Value < entries[j].Value
	})
	return entries, nil
}

// name returns the symbolic name bound to (slot, value), if any.
func (nv *NamedValues) name(slot uint32, value int32) (string, bool) {
	s, ok := nv.names[slotValue{Slot: slot, Value: value}]
	return s, ok
}

// value returns the raw value bound to (slot, name), if any.
func (nv *NamedValues) value(slot uint32, name string) (int32, bool) {
	v, ok := nv.values[slotName{Slot: slot, Name: name}]
	return v, ok
}

// Len returns the number of bound pairs.
func (nv *NamedValues) Len() int {
	return len(nv.names)
}
