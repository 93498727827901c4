package util

import (
	"fmt"
	"sync"
)

// An EnumSet interns strings as small integer ids. Ids are assigned in
// insertion order, so reserved values (padding, unknown) must be added
// before any data-derived values.
type EnumSet struct {
	mu     sync.RWMutex
	Enum   map[string]int
	Index  []string
	Frozen bool
}

func (e *EnumSet) RebuildIndex() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Index = make([]string, len(e.Enum))
	for k, v := range e.Enum {
		e.Index[v] = k
	}
}

func (e *EnumSet) Add(value string) (int, bool) {
	if e.Frozen {
		panic("Cannot add value to frozen enum set")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	enum, exists := e.Enum[value]
	if exists {
		return enum, false
	}
	enum = len(e.Index)
	e.Enum[value] = enum
	e.Index = append(e.Index, value)
	return enum, true
}

func (e *EnumSet) IndexOf(value string) (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	enum, exists := e.Enum[value]
	return enum, exists
}

func (e *EnumSet) ValueOf(index int) string {
	if index < 0 {
		panic("Negative index requested")
	}
	e.mu.RLock()
	if len(e.Index) != len(e.Enum) {
		e.mu.RUnlock()
		e.RebuildIndex()
		e.mu.RLock()
	}
	defer e.mu.RUnlock()
	if len(e.Index) <= index {
		panic("Unknown index requested: " + fmt.Sprintf("%v of %v", index, len(e.Index)))
	}
	return e.Index[index]
}

func (e *EnumSet) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.Index)
}

// Values returns a copy of the interned values in id order.
func (e *EnumSet) Values() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	retval := make([]string, len(e.Index))
	copy(retval, e.Index)
	return retval
}

func NewEnumSet(capacity int) *EnumSet {
	e := &EnumSet{
		Enum:  make(map[string]int, capacity),
		Index: make([]string, 0, capacity),
	}
	return e
}
