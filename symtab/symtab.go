// Package symtab implements string interning with dense integer handles.
//
// Interning the same content twice yields the same Symbol, so equality of
// previously-seen strings is a single integer comparison regardless of
// their length. Handles are assigned in first-seen order starting at 0 and
// are only meaningful relative to the Table that issued them.
//
// Content is stored exactly once, in an append-only store that never moves
// what it holds, so a string obtained from Resolve may be retained while
// further interning goes on. A Table is a single-owner structure: one
// goroutine interns, no synchronization is provided.
package symtab

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/safecast"

	"github.com/rawbytedev/pinned"
)

// ErrForeignSymbol reports a Resolve with a handle this table never
// issued. Handles from another table that happen to fall inside the
// issued range are indistinguishable from local ones and resolve to
// unrelated content; keeping tables apart is the caller's job.
var ErrForeignSymbol = errors.New("symbol not issued by this table")

// Symbol identifies one interned string within the Table that issued it.
// Two Symbols from the same table are equal exactly when their content is
// equal.
type Symbol uint32

// Table deduplicates string content and issues dense Symbol handles.
type Table struct {
	index index // content -> Symbol, hashes only; content lives in store
	store *pinned.Seq[string]
}

// New creates an empty table.
func New() *Table {
	return &Table{store: pinned.NewSeq[string]()}
}

// Intern returns the handle for text, issuing the next unused one if this
// content has not been seen before. The table keeps its own copy of the
// content, so text may alias a transient decode buffer.
func (t *Table) Intern(text string) Symbol {
	h := hashString(text)
	if sym, ok := t.index.find(h, text, t.store); ok {
		return sym
	}
	sym := t.issue(text)
	t.index.insert(h, sym)
	return sym
}

// Gensym stores text under a fresh handle without recording it in the
// content index. The handle resolves to text but never compares equal to
// any other handle, including an interned one for the same content.
func (t *Table) Gensym(text string) Symbol {
	return t.issue(text)
}

func (t *Table) issue(text string) Symbol {
	idx := t.store.Push(strings.Clone(text))
	v, err := safecast.Conv[uint32](idx)
	if err != nil {
		panic(fmt.Errorf("symtab: handle space exhausted: %w", err))
	}
	return Symbol(v)
}

// Resolve returns the content stored for sym. The returned string is the
// table's own copy and remains valid across further interning.
func (t *Table) Resolve(sym Symbol) (string, error) {
	s, ok := t.store.Get(int(sym))
	if !ok {
		return "", ErrForeignSymbol
	}
	return *s, nil
}

// Len returns the number of handles issued so far, by Intern and Gensym
// combined. Issued handles are exactly 0..Len()-1.
func (t *Table) Len() int { return t.store.Len() }
