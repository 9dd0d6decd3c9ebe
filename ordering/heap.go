package ordering

// componentItem is one entry in the tie-break priority queue: a
// component id keyed by (block size, component id) ascending.
type componentItem struct {
	id        int
	blockSize int
}

// componentPQ is a binary min-heap over componentItem, ordered by
// (blockSize, id). Modeled on dijkstra's nodePQ: items are pushed once
// and never mutated in place (no decrease-key). TopoSortWithTiebreak
// pushes each component only when its in-degree reaches zero, so every
// popped item is emitted; nothing is skipped.
type componentPQ []componentItem

func (pq componentPQ) Len() int { return len(pq) }

func (pq componentPQ) Less(i, j int) bool {
	if pq[i].blockSize != pq[j].blockSize {
		return pq[i].blockSize < pq[j].blockSize
	}
	return pq[i].id < pq[j].id
}

func (pq componentPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *componentPQ) Push(x any) {
	*pq = append(*pq, x.(componentItem))
}

func (pq *componentPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
