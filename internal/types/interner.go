package types

import (
	"fmt"
	"sync"

	"fortio.org/safecast"
)

// TypeID uniquely identifies a descriptor inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Interner provides stable TypeIDs for descriptors. It is safe for concurrent use.
type Interner struct {
	mu    sync.RWMutex
	types []Descriptor
	index map[Descriptor]TypeID
}

// NewInterner constructs an interner seeded with the predefined widths in both
// signednesses, so their IDs are identical across interners.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[Descriptor]TypeID, 2*len(Predefined)),
	}
	in.types = append(in.types, Descriptor{}) // reserve 0 as invalid sentinel
	for _, w := range Predefined {
		in.internRaw(MakeInt(w))
		in.internRaw(MakeUint(w))
	}
	return in
}

// Intern ensures the descriptor has a stable TypeID. The boolean reports
// whether the descriptor was seen for the first time.
func (in *Interner) Intern(d Descriptor) (TypeID, bool) {
	if d.Validate() != nil {
		return NoTypeID, false
	}
	in.mu.RLock()
	id, ok := in.index[d]
	in.mu.RUnlock()
	if ok {
		return id, false
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[d]; ok {
		return id, false
	}
	return in.internRaw(d), true
}

// internRaw adds the descriptor to the storage without consulting the map.
// Callers hold the write lock or own the interner exclusively.
func (in *Interner) internRaw(d Descriptor) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, d)
	in.index[d] = id
	return id
}

// Find returns the TypeID already assigned to d, if any.
func (in *Interner) Find(d Descriptor) (TypeID, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	id, ok := in.index[d]
	return id, ok
}

// Len returns the number of interned descriptors.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.types) - 1
}
