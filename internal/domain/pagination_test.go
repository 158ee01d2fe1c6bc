package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest(t *testing.T) {
	tests := []struct {
		from, size           int
		wantOffset, wantSize int
	}{
		{0, 10, 0, 10},
		{15, 10, 10, 10},
		{9, 10, 0, 10},
		{20, 10, 20, 10},
		{-1, 0, 0, DefaultSize},
		{7, 3, 6, 3},
	}
	for _, tt := range tests {
		p := NewPageRequest(tt.from, tt.size)
		assert.Equal(t, tt.wantOffset, p.Offset(), "from=%d size=%d", tt.from, tt.size)
		assert.Equal(t, tt.wantSize, p.Limit())
	}
}

func TestCompilationPatch_Apply(t *testing.T) {
	c := &Compilation{ID: 1, Title: "Summer", Pinned: false, EventIDs: []int64{1, 2}}
	events := []int64{3}
	pinned := true
	CompilationPatch{Pinned: &pinned, Events: &events}.Apply(c)
	assert.Equal(t, "Summer", c.Title)
	assert.True(t, c.Pinned)
	assert.Equal(t, []int64{3}, c.EventIDs)

	empty := []int64{}
	CompilationPatch{Events: &empty}.Apply(c)
	assert.Empty(t, c.EventIDs)
}
