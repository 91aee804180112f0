package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mafigo/itemset"
)

func TestResultSetInsert(t *testing.T) {
	t.Run("RejectsSubsumedCandidate", func(t *testing.T) {
		rs := NewResultSet[int]()
		require.True(t, rs.Insert(itemset.New(1, 2, 3)))

		assert.False(t, rs.Insert(itemset.New(1, 2)))
		assert.False(t, rs.Insert(itemset.New(1, 2, 3)))
		assert.Equal(t, 1, rs.Len())
	})

	t.Run("EvictsSubsumedMembers", func(t *testing.T) {
		rs := NewResultSet[int]()
		require.True(t, rs.Insert(itemset.New(1)))
		require.True(t, rs.Insert(itemset.New(2, 3)))

		require.True(t, rs.Insert(itemset.New(1, 2, 3)))

		assert.Equal(t, []itemset.Itemset[int]{itemset.New(1, 2, 3)}, rs.Itemsets())
	})

	t.Run("KeepsIncomparableMembers", func(t *testing.T) {
		rs := NewResultSet[int]()
		require.True(t, rs.Insert(itemset.New(1, 2)))
		require.True(t, rs.Insert(itemset.New(1, 3)))
		require.True(t, rs.Insert(itemset.New(2, 3)))

		assert.Equal(t, 3, rs.Len())
	})
}

func TestResultSetCovers(t *testing.T) {
	rs := NewResultSet[int]()
	require.True(t, rs.Insert(itemset.New(1, 2, 3)))

	assert.True(t, rs.Covers(itemset.New(1, 3)))
	assert.True(t, rs.Covers(itemset.New(1, 2, 3)))
	assert.False(t, rs.Covers(itemset.New(1, 4)))
	assert.True(t, rs.Covers(itemset.New[int]()))
}

func TestResultSetAntichainUnderConcurrency(t *testing.T) {
	rs := NewResultSet[int]()

	// Concurrent inserts of chains and incomparable sets must still leave
	// an antichain.
	var wg sync.WaitGroup
	candidates := []itemset.Itemset[int]{
		itemset.New(1), itemset.New(1, 2), itemset.New(1, 2, 3),
		itemset.New(4), itemset.New(4, 5), itemset.New(2, 3),
		itemset.New(1, 2), itemset.New(1, 2, 3), itemset.New(4, 5),
	}
	for _, c := range candidates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rs.Insert(c)
		}()
	}
	wg.Wait()

	got := rs.Itemsets()
	for i, a := range got {
		for j, b := range got {
			if i == j {
				continue
			}
			assert.False(t, a.SupersetOf(b), "%v subsumes %v", a, b)
		}
	}
	assert.Contains(t, got, itemset.New(1, 2, 3))
	assert.Contains(t, got, itemset.New(4, 5))
}

func TestResultSetItemsetsIsCopy(t *testing.T) {
	rs := NewResultSet[int]()
	require.True(t, rs.Insert(itemset.New(2, 1)))

	got := rs.Itemsets()
	got[0][0] = 99

	assert.Equal(t, []itemset.Itemset[int]{itemset.New(1, 2)}, rs.Itemsets())
}
