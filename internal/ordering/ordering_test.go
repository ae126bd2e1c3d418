package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveUp(t *testing.T) {
	neighbor, ok := Move(5, 2, DirectionUp)
	assert.True(t, ok)
	assert.Equal(t, 1, neighbor)
}

func TestMoveDown(t *testing.T) {
	neighbor, ok := Move(5, 2, DirectionDown)
	assert.True(t, ok)
	assert.Equal(t, 3, neighbor)
}

func TestMoveFirstUpIsNoOp(t *testing.T) {
	_, ok := Move(5, 0, DirectionUp)
	assert.False(t, ok)
}

func TestMoveLastDownIsNoOp(t *testing.T) {
	_, ok := Move(5, 4, DirectionDown)
	assert.False(t, ok)
}

func TestMoveTwoElementList(t *testing.T) {
	neighbor, ok := Move(2, 1, DirectionUp)
	assert.True(t, ok)
	assert.Equal(t, 0, neighbor)

	neighbor, ok = Move(2, 0, DirectionDown)
	assert.True(t, ok)
	assert.Equal(t, 1, neighbor)
}

func TestMoveOutOfRange(t *testing.T) {
	_, ok := Move(3, -1, DirectionUp)
	assert.False(t, ok)

	_, ok = Move(3, 3, DirectionDown)
	assert.False(t, ok)
}

func TestMoveInvalidDirection(t *testing.T) {
	_, ok := Move(3, 1, Direction("sideways"))
	assert.False(t, ok)
}

func TestNextIndexEmpty(t *testing.T) {
	assert.Equal(t, 0, NextIndex(nil))
	assert.Equal(t, 0, NextIndex([]int{}))
}

func TestNextIndexContiguous(t *testing.T) {
	assert.Equal(t, 3, NextIndex([]int{0, 1, 2}))
}

func TestNextIndexWithGaps(t *testing.T) {
	// Gaps are tolerated; next index is still max+1
	assert.Equal(t, 8, NextIndex([]int{0, 3, 7}))
}

func TestNextIndexUnordered(t *testing.T) {
	assert.Equal(t, 5, NextIndex([]int{4, 1, 2}))
}

func TestDirectionIsValid(t *testing.T) {
	assert.True(t, DirectionUp.IsValid())
	assert.True(t, DirectionDown.IsValid())
	assert.False(t, Direction("left").IsValid())
}
