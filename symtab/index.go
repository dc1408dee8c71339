package symtab

import (
	"github.com/cespare/xxhash/v2"

	"github.com/rawbytedev/pinned"
)

// The index keeps no string content of its own. An entry carries the
// xxhash of the content and the handle; a hash match is confirmed against
// the store before it counts. Strings therefore exist exactly once, in the
// store, and rehashing on growth moves only (hash, handle) pairs.
//
// Open addressing with linear probing over a power-of-two table. Entries
// are never deleted, so hitting an unused slot during a probe means the
// content is absent.

type entry struct {
	hash uint64
	sym  Symbol
	used bool
}

type index struct {
	entries []entry
	count   int
}

const (
	minIndexCap = 16
	// grow before inserting above 70% load
	maxLoadNum = 7
	maxLoadDen = 10
)

func hashString(s string) uint64 { return xxhash.Sum64String(s) }

func (ix *index) find(h uint64, text string, store *pinned.Seq[string]) (Symbol, bool) {
	if len(ix.entries) == 0 {
		return 0, false
	}
	mask := uint64(len(ix.entries) - 1)
	for i := h & mask; ; i = (i + 1) & mask {
		e := &ix.entries[i]
		if !e.used {
			return 0, false
		}
		if e.hash == h {
			if s, ok := store.Get(int(e.sym)); ok && *s == text {
				return e.sym, true
			}
		}
	}
}

func (ix *index) insert(h uint64, sym Symbol) {
	if ix.count*maxLoadDen >= len(ix.entries)*maxLoadNum {
		ix.grow()
	}
	ix.put(h, sym)
	ix.count++
}

func (ix *index) put(h uint64, sym Symbol) {
	mask := uint64(len(ix.entries) - 1)
	i := h & mask
	for ix.entries[i].used {
		i = (i + 1) & mask
	}
	ix.entries[i] = entry{hash: h, sym: sym, used: true}
}

func (ix *index) grow() {
	newCap := minIndexCap
	if len(ix.entries) > 0 {
		newCap = len(ix.entries) * 2
	}
	old := ix.entries
	ix.entries = make([]entry, newCap)
	for i := range old {
		if old[i].used {
			ix.put(old[i].hash, old[i].sym)
		}
	}
}
