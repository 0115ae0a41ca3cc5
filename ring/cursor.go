// File: ring/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

// Cursor is an opaque position in the backing store's enumeration
// order. Cursors compare with ==; the zero Cursor equals Nil(). A
// cursor is a borrowed view: any mutating call on the buffer that
// produced it may invalidate what it addresses.
type Cursor struct {
	index int
	valid bool
}

// Valid reports whether the cursor addresses a slot at all. Nil() is
// the only invalid cursor.
func (c Cursor) Valid() bool {
	return c.valid
}

// Index returns the store offset the cursor addresses. Meaningful only
// when Valid.
func (c Cursor) Index() int {
	return c.index
}
