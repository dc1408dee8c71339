// Package pinned provides containers whose elements never move.
//
// A plain slice cannot hand out a pointer to an element and keep growing:
// the next append may reallocate the backing array and the pointer is left
// behind, reading stale memory. The containers here trade API surface for
// that guarantee instead. Once a value is stored, a pointer obtained from
// Get stays valid and unchanged for the lifetime of the container, no
// matter how many values are stored afterwards.
//
// Two containers live in this package:
//
//   - OnceArray: fixed capacity, every slot written at most once. Built for
//     decoding a table of records that arrive out of order, where record i
//     may be needed before it has been decoded.
//   - Seq: unbounded append-only sequence backed by fixed blocks that are
//     allocated once and never resized.
//
// String interning on top of the same storage discipline lives in the
// symtab subpackage.
//
// All containers are single-owner structures: one goroutine mutates, and
// no synchronization is provided. Sharing for reads is safe only after all
// mutation has stopped. Callers must not write through pointers returned
// by Get; doing so results in undefined behaviour.
package pinned
