package viewcache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFetch returns fetch functions that count network calls and serve
// canned data per call.
func countingFetch(results ...any) (FetchFunc, *int) {
	calls := 0
	fn := func(ctx context.Context) (any, error) {
		idx := calls
		if idx >= len(results) {
			idx = len(results) - 1
		}
		calls++
		data := results[idx]
		if err, ok := data.(error); ok {
			return nil, err
		}
		return data, nil
	}
	return fn, &calls
}

func TestGetOrFetch_CacheHit(t *testing.T) {
	m := NewManager()
	fetch, calls := countingFetch([]string{"tx1", "tx2"})

	first, err := m.GetOrFetch(context.Background(), DailyTransactions, "daily:2024-03-15", fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"tx1", "tx2"}, first)

	second, err := m.GetOrFetch(context.Background(), DailyTransactions, "daily:2024-03-15", fetch)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, 1, *calls, "same key must issue exactly one network call")
}

func TestGetOrFetch_KeyChangeRefetches(t *testing.T) {
	m := NewManager()
	fetch, calls := countingFetch("day-one", "day-two")

	_, err := m.GetOrFetch(context.Background(), DailyTransactions, "daily:2024-03-15", fetch)
	require.NoError(t, err)

	data, err := m.GetOrFetch(context.Background(), DailyTransactions, "daily:2024-03-16", fetch)
	require.NoError(t, err)
	assert.Equal(t, "day-two", data)
	assert.Equal(t, 2, *calls)

	// Default retention is one slot: the first key is gone again.
	assert.False(t, m.Cached(DailyTransactions, "daily:2024-03-15"))
}

func TestGetOrFetch_FailureLeavesSlot(t *testing.T) {
	m := NewManager()

	_, err := m.GetOrFetch(context.Background(), DailyTransactions, "k1", func(ctx context.Context) (any, error) {
		return "good", nil
	})
	require.NoError(t, err)

	_, err = m.GetOrFetch(context.Background(), DailyTransactions, "k2", func(ctx context.Context) (any, error) {
		return nil, assert.AnError
	})
	require.Error(t, err)

	// The prior slot survives a failed refetch for another key.
	assert.True(t, m.Cached(DailyTransactions, "k1"))
}

func TestInvalidate_Breadth(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	daily, dailyCalls := countingFetch("d1", "d2")
	monthly, monthlyCalls := countingFetch("m1", "m2")
	search, searchCalls := countingFetch("s1", "s2")

	_, err := m.GetOrFetch(ctx, DailyTransactions, "daily:2024-03-15", daily)
	require.NoError(t, err)
	_, err = m.GetOrFetch(ctx, MonthlyExpenses, "month:2024-03", monthly)
	require.NoError(t, err)
	_, err = m.GetOrFetch(ctx, SearchResults, "search:x", search)
	require.NoError(t, err)

	// A successful mutation clears all three transaction views regardless of key.
	m.Invalidate(TransactionViews()...)

	_, err = m.GetOrFetch(ctx, DailyTransactions, "daily:2024-03-15", daily)
	require.NoError(t, err)
	_, err = m.GetOrFetch(ctx, MonthlyExpenses, "month:2024-03", monthly)
	require.NoError(t, err)
	_, err = m.GetOrFetch(ctx, SearchResults, "search:x", search)
	require.NoError(t, err)

	assert.Equal(t, 2, *dailyCalls)
	assert.Equal(t, 2, *monthlyCalls)
	assert.Equal(t, 2, *searchCalls)
}

func TestGetOrFetch_StaleResponseDiscarded(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	release := make(chan struct{})
	done := make(chan struct{})

	// Slow fetch for K1.
	go func() {
		defer close(done)
		data, err := m.GetOrFetch(ctx, DailyTransactions, "K1", func(ctx context.Context) (any, error) {
			<-release
			return "stale", nil
		})
		// The late caller still receives its own result.
		assert.NoError(t, err)
		assert.Equal(t, "stale", data)
	}()

	// K2 becomes the active key while K1 is in flight.
	data, err := m.GetOrFetch(ctx, DailyTransactions, "K2", func(ctx context.Context) (any, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", data)

	close(release)
	<-done

	// K1's late response must not have overwritten the slot.
	assert.False(t, m.Cached(DailyTransactions, "K1"))
	assert.True(t, m.Cached(DailyTransactions, "K2"))
}

func TestEndToEnd_AddTransactionScenario(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	key := "daily:2024-03-15"

	calls := 0
	fetch := func(ctx context.Context) (any, error) {
		calls++
		if calls == 1 {
			return []string{"tx1", "tx2"}, nil
		}
		return []string{"tx1", "tx2", "tx3"}, nil
	}

	data, err := m.GetOrFetch(ctx, DailyTransactions, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"tx1", "tx2"}, data)
	assert.Equal(t, 1, calls)

	data, err = m.GetOrFetch(ctx, DailyTransactions, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"tx1", "tx2"}, data)
	assert.Equal(t, 1, calls, "second read must be a pure cache hit")

	// A new transaction for that day confirms; the mutation path invalidates.
	m.Invalidate(TransactionViews()...)

	data, err = m.GetOrFetch(ctx, DailyTransactions, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"tx1", "tx2", "tx3"}, data)
	assert.Equal(t, 2, calls)
}

func TestRetention_ServerPagedSearch(t *testing.T) {
	m := NewManager()
	m.SetRetention(SearchResults, 4)
	ctx := context.Background()

	calls := 0
	fetchPage := func(page string) (any, error) {
		calls++
		return "results-" + page, nil
	}

	_, err := m.GetOrFetch(ctx, SearchResults, "search:f-p1", func(ctx context.Context) (any, error) { return fetchPage("1") })
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// Page 2 with unchanged filters is a new key: fresh network call.
	_, err = m.GetOrFetch(ctx, SearchResults, "search:f-p2", func(ctx context.Context) (any, error) { return fetchPage("2") })
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	// Back to page 1: still retained, no network call.
	data, err := m.GetOrFetch(ctx, SearchResults, "search:f-p1", func(ctx context.Context) (any, error) { return fetchPage("1") })
	require.NoError(t, err)
	assert.Equal(t, "results-1", data)
	assert.Equal(t, 2, calls)
}

func TestLookup_Typed(t *testing.T) {
	m := NewManager()

	txs, err := Lookup(context.Background(), m, DailyTransactions, "k", func(ctx context.Context) ([]int, error) {
		return []int{1, 2, 3}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, txs)

	// A hit through the untyped path still comes back typed.
	txs, err = Lookup(context.Background(), m, DailyTransactions, "k", func(ctx context.Context) ([]int, error) {
		t.Fatal("fetch must not run on a cache hit")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Len(t, txs, 3)
}
