// File: ring/string.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"fmt"
	"strings"
)

var _ fmt.Stringer = (*Buffer[any])(nil)

// String renders every materialized slot in store order, live or
// retired, bracketing the live window: "]" is emitted before the slot
// at back, "[" before the slot at front (slot 0 when the buffer is
// empty). A buffer over a store with nothing materialized renders as
// "[empty ring]".
func (b *Buffer[T]) String() string {
	n := b.store.Len()
	if n == 0 {
		return "[empty ring]"
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i == b.back {
			sb.WriteByte(']')
		}
		if i != 0 {
			sb.WriteByte(',')
		}
		if i == b.front || (i == 0 && b.front == emptyFront) {
			sb.WriteByte('[')
		}
		fmt.Fprintf(&sb, "%v", b.store.At(i))
	}
	return sb.String()
}
