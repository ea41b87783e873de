package IntTable

// half of n, but at least 1.
func half(n uint) uint {
	if n>>1 == 0 {
		return 1
	}
	return n >> 1
}

// resize rebuilds the table with n buckets. The new table is complete before it replaces the old one, and
// re-inserting goes straight to the chains so it can't trigger another resize.
func (u *IntTable) resize(n uint) {
	if n == u.Cap() {
		return
	}
	if n > u.Cap() {
		log.Debugf("grow %d -> %d, size %d", u.Cap(), n, u.t.sz)
	} else {
		log.Debugf("shrink %d -> %d, size %d", u.Cap(), n, u.t.sz)
	}
	u.t = u.t.rehash(n)
}
