package utils

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "c"}, "b"))
	require.Equal(t, 0, FindIndex([]int{4, 4}, 4), "Should return the first match")
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3), "Should return -1 when missing")
}

func TestSortedKeys(t *testing.T) {
	m := map[int]string{3: "c", 1: "a", 2: "b"}

	require.Equal(t, []int{1, 2, 3}, SortedKeys(m, cmp.Compare[int]))
	require.Empty(t, SortedKeys(map[int]bool{}, cmp.Compare[int]))
}
