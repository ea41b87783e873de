/*
Package IntTable implements a hash table from int to int using separate chaining.

Each bucket holds a doubly linked chain of entries. Entries live in an arena owned by the table and link to each
other by slot index, so a removed or rehashed entry can never be reached again. The bucket of a key is chosen by
multiplicative hashing with the golden ratio.

# Resizing
After an Insert of a new key the table doubles when Size/Cap goes above Config.GrowAt. After a Remove it halves when
Size/Cap goes below Config.ShrinkAt, unless the table is empty; Cap never goes below 1. A resize builds a complete new
bucket array and arena, re-inserting every pair, and only then drops the old one. Size counts distinct keys, so
overwriting the value of an existing key never resizes.

# Concurrency
IntTable isn't safe for concurrent use. Guard it with a single lock if it must be shared.
*/
package IntTable

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("IntTable")

type IntTable struct {
	t    table
	conf Config
}

// New IntTable with the default thresholds and capacity buckets. capacity 0 means DefaultCapacity.
// Panics if capacity is above MaxCapacity.
func New(capacity uint) *IntTable {
	c := DefaultConfig()
	c.Capacity = capacity
	M, err := NewFromConfig(c)
	if err != nil {
		panic(err)
	}
	return M
}

func NewFromConfig(c Config) (*IntTable, error) {
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if err := c.Validate(); err != nil {
		log.Warningf("rejected config %+v: %v", c, err)
		return nil, err
	}
	return &IntTable{t: newTable(c.Capacity, 0), conf: c}, nil
}

// Size is the number of distinct keys.
func (u *IntTable) Size() uint {
	return u.t.sz
}

// Cap is the number of buckets.
func (u *IntTable) Cap() uint {
	return uint(len(u.t.buckets))
}

func (u *IntTable) LoadFactor() float64 {
	return float64(u.t.sz) / float64(len(u.t.buckets))
}

// Insert key with val, or overwrite the value if key is already present. Returns true if key is new.
func (u *IntTable) Insert(key, val int) bool {
	if !u.t.store(key, val) {
		return false
	}
	if n := u.Cap(); n <= MaxCapacity>>1 && u.LoadFactor() > u.conf.GrowAt {
		u.resize(n << 1)
	}
	return true
}

// Remove key. Returns false if key isn't present, which isn't an error.
func (u *IntTable) Remove(key int) bool {
	if _, ok := u.t.delete(key); !ok {
		return false
	}
	if u.t.sz > 0 && u.LoadFactor() < u.conf.ShrinkAt {
		u.resize(half(u.Cap()))
	}
	return true
}

// Find the value of key. ok is false if key isn't present.
func (u *IntTable) Find(key int) (val int, ok bool) {
	if i := u.t.search(key); i != 0 {
		return u.t.ents[i].v, true
	}
	return
}

func (u *IntTable) HasKey(key int) bool {
	return u.t.search(key) != 0
}

// Range calls f on every pair, bucket by bucket and each chain from head to tail. Stops when f returns false.
// f must not modify the table.
func (u *IntTable) Range(f func(key, val int) bool) {
	for b := range u.t.buckets {
		if !u.t.walk(uint(b), func(e *entry) bool { return f(e.k, e.v) }) {
			return
		}
	}
}

// Take an arbitrary pair without removing it. ok is false if the table is empty.
func (u *IntTable) Take() (key, val int, ok bool) {
	if i := u.t.live.First(); i > 0 {
		e := u.t.ents[i]
		return e.k, e.v, true
	}
	return
}

// Clear drops every pair and goes back to the configured capacity.
func (u *IntTable) Clear() {
	u.t = newTable(u.conf.Capacity, 0)
}
