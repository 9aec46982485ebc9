package console

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	require.Equal(t, items, paginate(items, listQuery{}), "no params returns everything")
	require.Equal(t, []int{1, 2, 3}, paginate(items, listQuery{Page: 1, PageSize: 3}))
	require.Equal(t, []int{7}, paginate(items, listQuery{Page: 3, PageSize: 3}), "last page is short")
	require.Empty(t, paginate(items, listQuery{Page: 9, PageSize: 3}), "past the end is empty, not an error")
}

func TestFirstN(t *testing.T) {
	require.Equal(t, []int{1, 2}, firstN([]int{1, 2, 3}, 2))
	require.Equal(t, []int{1}, firstN([]int{1}, 5))
	require.NotNil(t, firstN[int](nil, 5), "nil never leaks into a view model")
}

func TestFallback(t *testing.T) {
	require.Equal(t, "upstream says", fallback("upstream says", "default"))
	require.Equal(t, "default", fallback("", "default"))
}

func TestKeyedInflight(t *testing.T) {
	ki := newKeyedInflight()

	require.True(t, ki.TryAcquire("topup:42"))
	require.False(t, ki.TryAcquire("topup:42"), "same row is locked")
	require.True(t, ki.TryAcquire("topup:43"), "other rows are independent")

	ki.Release("topup:42")
	require.True(t, ki.TryAcquire("topup:42"), "released key is reusable")
}

func TestKeyedInflight_OneWinnerUnderContention(t *testing.T) {
	ki := newKeyedInflight()

	const workers = 16
	var won int32
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ki.TryAcquire("user:7") {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), won, "exactly one concurrent mutation may hold the key")
}
