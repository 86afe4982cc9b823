package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
)

func TestCheckedBuildDetectsStaleSlot(t *testing.T) {
	if !checked {
		t.Skip("invariant checks need -tags ringdebug")
	}
	b := NewOf[int, slots5[int]]([]int{1, 2})
	b.slots[4] = 9

	err := panicErr(func() { b.PushBack(3) })
	require.Error(t, err)
	assert.Equal(t, api.ErrCodeInternal, api.CodeOf(err))
}

func TestCheckedBuildAcceptsValidState(t *testing.T) {
	b := NewOf[int, slots5[int]]([]int{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, b.PopFront())
	_, err := b.ReleaseBack()
	require.NoError(t, err)
	b.Clear()
	b.Close()
	assert.NotPanics(t, b.verify)
}
