package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterMapFind(t *testing.T) {
	nums := []int{1, 2, 3, 4}

	assert.Equal(t, []int{2, 4}, Filter(nums, func(n int) bool { return n%2 == 0 }))
	assert.Equal(t, []string{"1", "2", "3", "4"}, Map(nums, strconv.Itoa))
	assert.Equal(t, 3, *Find(nums, func(n int) bool { return n > 2 }))
	assert.Nil(t, Find(nums, func(n int) bool { return n > 9 }))
}

func TestNilHelpers(t *testing.T) {
	assert.Nil(t, NilIfEmpty(Ptr("  ")))
	assert.Nil(t, NilIfEmpty(nil))
	assert.Equal(t, "x", *NilIfEmpty(Ptr(" x ")))

	assert.Nil(t, NilIfZero(Ptr[uint](0)))
	assert.Equal(t, uint(3), *NilIfZero(Ptr[uint](3)))

	a, b := "  a ", "b "
	TrimAll(&a, &b)
	assert.Equal(t, "a", a)
	assert.Equal(t, "b", b)
}
