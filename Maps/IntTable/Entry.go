package IntTable

import (
	Chain_Table "github.com/g-m-twostay/chain-table"
)

// entry is one pair in a chain. prev and next are slot indexes into the arena, 0 is nil.
type entry struct {
	k, v       int
	prev, next uint
}

// arena owns every entry of a table. Entries refer to each other by slot index only.
type arena struct {
	ents []entry              //ents[0] is the nil sentinel and never used.
	free uint                 //beginning of the linked list that contains all the free slots, in which case next is the link.
	live Chain_Table.BitArray //bit i is set iff ents[i] is linked in some chain.
}

func newArena(hint uint) arena {
	return arena{ents: make([]entry, 1, hint+1), live: Chain_Table.NewBitArray(int(hint + 1))}
}

// alloc gets a free slot for (k, v). It may grow ents, so pointers into ents don't survive it.
func (u *arena) alloc(k, v int) (i uint) {
	if u.free != 0 {
		i = u.free
		u.free = u.ents[i].next
		u.ents[i] = entry{k: k, v: v}
	} else {
		i = uint(len(u.ents))
		u.ents = append(u.ents, entry{k: k, v: v})
		u.live = u.live.Extend(len(u.ents))
	}
	u.live.Set(int(i))
	return
}

// release adds i to the free list.
func (u *arena) release(i uint) {
	u.live.Clr(int(i))
	u.ents[i] = entry{next: u.free}
	u.free = i
}

// table is a bucket array over an arena. sz counts distinct keys.
type table struct {
	arena
	buckets []uint //head slot of each chain.
	sz      uint
}

func newTable(n, hint uint) table {
	return table{arena: newArena(hint), buckets: make([]uint, n)}
}

func (u *table) index(key int) uint {
	return Chain_Table.Golden.Index(key, uint(len(u.buckets)))
}

// search returns the slot of key, or 0.
func (u *table) search(key int) uint {
	for i := u.buckets[u.index(key)]; i != 0; i = u.ents[i].next {
		if u.ents[i].k == key {
			return i
		}
	}
	return 0
}

// store overwrites the value of key in place if it's in the chain, otherwise appends a new entry at the tail.
// Returns true if key is new.
func (u *table) store(key, val int) bool {
	b := u.index(key)
	tail := u.buckets[b]
	if tail == 0 {
		u.buckets[b] = u.alloc(key, val)
		u.sz++
		return true
	}
	for {
		if u.ents[tail].k == key {
			u.ents[tail].v = val
			return false
		}
		if u.ents[tail].next == 0 {
			break
		}
		tail = u.ents[tail].next
	}
	i := u.alloc(key, val)
	u.ents[i].prev = tail
	u.ents[tail].next = i
	u.sz++
	return true
}

// delete splices key out of its chain and frees its slot.
func (u *table) delete(key int) (val int, ok bool) {
	b := u.index(key)
	i := u.buckets[b]
	for i != 0 && u.ents[i].k != key {
		i = u.ents[i].next
	}
	if i == 0 {
		return
	}
	e := u.ents[i]
	if e.prev != 0 {
		u.ents[e.prev].next = e.next
	} else {
		u.buckets[b] = e.next
	}
	if e.next != 0 {
		u.ents[e.next].prev = e.prev
	}
	u.release(i)
	u.sz--
	return e.v, true
}

// rehash copies every pair into a new table with n buckets, walking buckets in order and chains head to tail.
// The receiver isn't modified; the caller drops it afterward.
func (u *table) rehash(n uint) table {
	t := newTable(n, u.sz)
	for _, h := range u.buckets {
		for i := h; i != 0; i = u.ents[i].next {
			t.store(u.ents[i].k, u.ents[i].v)
		}
	}
	return t
}

// walk calls f on each entry of bucket b from head to tail. Stops and returns false when f returns false.
func (u *table) walk(b uint, f func(*entry) bool) bool {
	for i := u.buckets[b]; i != 0; i = u.ents[i].next {
		if !f(&u.ents[i]) {
			return false
		}
	}
	return true
}
