package parambuilder

import "github.com/go-andiamo/gopt"

// Param is a single entry in Params
//
// a Param whose Key is nil or not present is a null key entry - it is never serialized
type Param struct {
	Key   *gopt.Optional[string]
	Value Value
}

func (p Param) keyText() (string, bool) {
	if p.Key != nil && p.Key.IsPresent() {
		return p.Key.Default(""), true
	}
	return "", false
}

// P creates a Param with the given key and value (the value is adapted using ValueOf)
func P(key string, value any) Param {
	return Param{
		Key:   gopt.Of[string](key),
		Value: ValueOf(value),
	}
}

// NullKey creates a Param with no key
func NullKey(value any) Param {
	return Param{
		Key:   gopt.Empty[string](),
		Value: ValueOf(value),
	}
}

// Params is an ordered mapping of keys to values
//
// insertion order is serialization order
type Params struct {
	entries []Param
}

// NewParams creates Params from the given entries (in order)
func NewParams(entries ...Param) *Params {
	result := &Params{
		entries: make([]Param, 0, len(entries)),
	}
	for _, e := range entries {
		result.Add(e)
	}
	return result
}

// Set sets the value for a key
//
// if the key already exists its value is replaced (keeping its position), otherwise the key is appended
//
// the receiver must not be nil
func (p *Params) Set(key string, value any) *Params {
	if i := p.indexOf(key); i >= 0 {
		p.entries[i].Value = ValueOf(value)
	} else {
		p.entries = append(p.entries, P(key, value))
	}
	return p
}

// Add adds an entry
//
// an entry with a key is treated as Set - an entry with no key is always appended
//
// the receiver must not be nil
func (p *Params) Add(entry Param) *Params {
	if key, ok := entry.keyText(); ok {
		return p.Set(key, entry.Value)
	}
	p.entries = append(p.entries, entry)
	return p
}

// Get returns the value for a key
func (p *Params) Get(key string) (Value, bool) {
	if i := p.indexOf(key); i >= 0 {
		return p.entries[i].Value, true
	}
	return nil, false
}

// Delete removes a key, returning whether it was present
func (p *Params) Delete(key string) bool {
	if i := p.indexOf(key); i >= 0 {
		p.entries = append(p.entries[:i], p.entries[i+1:]...)
		return true
	}
	return false
}

// Len is the number of entries (including null key entries)
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Entries returns a copy of the entries, in order
func (p *Params) Entries() []Param {
	if p == nil {
		return nil
	}
	result := make([]Param, len(p.entries))
	copy(result, p.entries)
	return result
}

func (p *Params) indexOf(key string) int {
	if p == nil {
		return -1
	}
	for i, e := range p.entries {
		if k, ok := e.keyText(); ok && k == key {
			return i
		}
	}
	return -1
}
