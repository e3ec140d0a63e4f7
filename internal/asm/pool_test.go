package asm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelPool(t *testing.T) {
	p := NewLabelPool()
	const n = labelPageSize*2 + 3
	for i := 0; i < n; i++ {
		l := p.Allocate()
		require.False(t, l.IsBound())
		l.Bind(i * 4)
	}
	require.Equal(t, n, p.Allocated())
	require.Equal(t, (labelPageSize+1)*4, p.View(labelPageSize+1).Position())

	var visited []int
	p.Each(func(l *Label) { visited = append(visited, l.Position()) })
	require.Equal(t, n, len(visited))
	for i, pos := range visited {
		require.Equal(t, i*4, pos)
	}

	p.Reset()
	require.Equal(t, 0, p.Allocated())
	p.Each(func(*Label) { t.Fatal("no label is allocated after Reset") })
}

func TestLabelPool_recycled(t *testing.T) {
	p := NewLabelPool()
	l := p.Allocate()
	l.AddFixup(0, 1)
	l.AddFixup(4, 1)
	p.Reset()

	// The same slot comes back unbound and unlinked, keeping its site capacity.
	l2 := p.Allocate()
	require.Same(t, l, l2)
	require.False(t, l2.IsBound())
	require.False(t, l2.IsLinked())
	require.Equal(t, 2, cap(l2.sites))

	l2.Bind(8)
	p.Reset()
	require.False(t, p.Allocate().IsBound())
}

func TestLabelPool_View_outOfRange(t *testing.T) {
	p := NewLabelPool()
	p.Allocate()
	require.Panics(t, func() { p.View(1) })
}
