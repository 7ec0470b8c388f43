package datastructure

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/waypointd/waypointd/pkg"
)

func TestHeapExtractsInRankOrder(t *testing.T) {
	for _, d := range []int{2, 4} {
		h := NewdAryHeap[string](d)

		h.Insert(NewPriorityQueueNode(3.5, "B"))
		h.Insert(NewPriorityQueueNode(0.0, "S"))
		h.Insert(NewPriorityQueueNode(2.1, "C"))
		h.Insert(NewPriorityQueueNode(7.9, "E"))
		h.Insert(NewPriorityQueueNode(2.5, "A"))

		want := []string{"S", "C", "A", "B", "E"}
		for _, expected := range want {
			node, err := h.ExtractMin()
			require.NoError(t, err)
			require.Equal(t, expected, node.GetItem())
		}
		require.True(t, h.IsEmpty())
	}
}

func TestHeapEqualRanksKeepInsertionOrder(t *testing.T) {
	h := NewBinaryHeap[string]()

	h.Insert(NewPriorityQueueNode(1.0, "first"))
	h.Insert(NewPriorityQueueNode(1.0, "second"))
	h.Insert(NewPriorityQueueNode(1.0, "third"))

	for _, expected := range []string{"first", "second", "third"} {
		node, err := h.ExtractMin()
		require.NoError(t, err)
		require.Equal(t, expected, node.GetItem())
	}
}

func TestHeapToleratesDuplicateItems(t *testing.T) {
	// lazy deletion relies on re-inserting the same item with a better
	// rank instead of decrease-key
	h := NewBinaryHeap[string]()

	h.Insert(NewPriorityQueueNode(9.0, "X"))
	h.Insert(NewPriorityQueueNode(4.0, "X"))
	h.Insert(NewPriorityQueueNode(6.0, "Y"))

	node, err := h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, "X", node.GetItem())
	require.Equal(t, 4.0, node.GetRank())

	node, err = h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, "Y", node.GetItem())

	// the stale entry is still there; the search loop skips it because
	// X is already settled
	node, err = h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, "X", node.GetItem())
	require.Equal(t, 9.0, node.GetRank())
}

func TestHeapEmptyExtract(t *testing.T) {
	h := NewBinaryHeap[int]()
	_, err := h.ExtractMin()
	require.Error(t, err)
	_, err = h.GetMin()
	require.Error(t, err)
}

func TestHeapGetMinrank(t *testing.T) {
	h := NewBinaryHeap[string]()

	// empty heap reports an unreachable rank
	require.Equal(t, 2*pkg.INF_WEIGHT, h.GetMinrank())

	h.Insert(NewPriorityQueueNode(3.5, "B"))
	h.Insert(NewPriorityQueueNode(2.1, "C"))
	require.Equal(t, 2.1, h.GetMinrank())

	node, err := h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, "C", node.GetItem())
	require.Equal(t, 3.5, h.GetMinrank())
}
