package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorModStaysPositiveForNegatives(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, FloorMod(-1, 12))
	assert.Equal(0, FloorMod(-12, 12))
	assert.Equal(4, FloorMod(64, 12))
}

func TestGetKeysIsSorted(t *testing.T) {
	m := map[int]string{7: "G", 0: "C", 4: "E"}
	assert.Equal(t, []int{0, 4, 7}, GetKeys(m))
}

func TestCloneDoesNotAlias(t *testing.T) {
	src := []int{1, 2, 3}
	dst := Clone(src)
	dst[0] = 9
	assert.Equal(t, 1, src[0])
}
