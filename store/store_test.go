// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// store_test.go — Contract tests for every backing store implementation.
package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/store"
)

// roundTrip exercises the base Store contract on a fully materialized
// store of 4 slots.
func roundTrip(t *testing.T, st api.Store[int]) {
	t.Helper()
	require.Equal(t, 4, st.Len())
	for i := 0; i < 4; i++ {
		st.Set(i, i*10)
	}
	for i := 0; i < 4; i++ {
		assert.Equal(t, i*10, st.At(i))
	}
	st.Set(2, -1)
	assert.Equal(t, -1, st.At(2))
	assert.Equal(t, 10, st.At(1), "neighbor slots must be untouched")
}

func grow(t *testing.T, st api.AppendStore[int]) api.AppendStore[int] {
	t.Helper()
	for i := 0; i < 4; i++ {
		st.Append(0)
	}
	return st
}

func TestSliceRoundTrip(t *testing.T) {
	roundTrip(t, store.NewSlice[int](4))
}

func TestVectorRoundTrip(t *testing.T) {
	roundTrip(t, grow(t, store.NewVector[int]()))
}

func TestVectorCapRoundTrip(t *testing.T) {
	st := store.NewVectorCap[int](4)
	assert.Equal(t, 0, st.Len(), "reserved capacity must not materialize slots")
	roundTrip(t, grow(t, st))
}

func TestListRoundTrip(t *testing.T) {
	roundTrip(t, grow(t, store.NewList[int]()))
}

func TestMmapRoundTrip(t *testing.T) {
	st, err := store.NewMmap[int](4)
	require.NoError(t, err)
	defer st.Release()
	roundTrip(t, st)
}

func TestWrapSliceAliases(t *testing.T) {
	backing := []int{1, 2, 3}
	st := store.WrapSlice(backing)
	st.Set(1, 9)
	assert.Equal(t, 9, backing[1], "WrapSlice must not copy")
}

func TestAppendGrowth(t *testing.T) {
	for name, st := range map[string]api.AppendStore[int]{
		"vector": store.NewVector[int](),
		"list":   store.NewList[int](),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0, st.Len())
			for i := 1; i <= 5; i++ {
				st.Append(i)
				assert.Equal(t, i, st.Len())
				assert.Equal(t, i, st.At(i-1), "appended value lands at the new slot")
			}
		})
	}
}

func TestCloneIndependence(t *testing.T) {
	stores := map[string]api.CloneStore[int]{
		"slice":  store.NewSlice[int](3),
		"vector": grow3(store.NewVector[int]()),
		"list":   grow3(store.NewList[int]()),
	}
	mm, err := store.NewMmap[int](3)
	require.NoError(t, err)
	defer mm.Release()
	stores["mmap"] = mm

	for name, st := range stores {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				st.Set(i, i+1)
			}
			dup := st.Clone()
			require.Equal(t, st.Len(), dup.Len())

			st.Set(0, 100)
			assert.Equal(t, 1, dup.At(0), "clone observed source mutation")
			dup.Set(1, 200)
			assert.Equal(t, 2, st.At(1), "source observed clone mutation")
		})
	}
}

func TestListSequentialAccess(t *testing.T) {
	st := store.NewList[int]()
	for i := 0; i < 16; i++ {
		st.Append(i)
	}
	// forward walk hits the adjacency cache
	for i := 0; i < 16; i++ {
		assert.Equal(t, i, st.At(i))
	}
	// random jumps must fall back to a full walk correctly
	for _, i := range []int{7, 0, 15, 3, 3, 4} {
		assert.Equal(t, i, st.At(i))
	}
	st.Set(5, -5)
	assert.Equal(t, -5, st.At(5))
	assert.Equal(t, 6, st.At(6))
}

func TestMmapRelease(t *testing.T) {
	st, err := store.NewMmap[uint64](8)
	require.NoError(t, err)
	st.Set(3, 42)
	assert.Equal(t, uint64(42), st.At(3))

	require.NoError(t, st.Release())
	assert.Equal(t, 0, st.Len(), "released store must report no slots")
	assert.ErrorIs(t, st.Release(), api.ErrStoreReleased)
}

func TestMmapRejectsBadArgs(t *testing.T) {
	_, err := store.NewMmap[int](0)
	assert.Error(t, err)
	_, err = store.NewMmap[int](-1)
	assert.Error(t, err)
	_, err = store.NewMmap[struct{}](4)
	assert.Error(t, err, "zero-sized element types have no mappable layout")
}

func grow3(st api.AppendStore[int]) api.CloneStore[int] {
	for i := 0; i < 3; i++ {
		st.Append(0)
	}
	return st.(api.CloneStore[int])
}
