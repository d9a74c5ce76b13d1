// Package heap implements the indexed priority queue over variable ids used
// by the solver's VSIDS branching heuristic: a max-heap ordered by a shared,
// externally-mutated activity array, with a position map so a variable's key
// can be bumped and re-sifted without a linear scan.
package heap

// notPresent is the pos[] sentinel for a variable that is not currently in
// the heap.
const notPresent = -1

// Heap is a max-heap of variable ids ordered by descending activity. The
// activity slice is owned by the caller (the solver); the heap only reads
// it via the shared pointer.
type Heap struct {
	vars     []int
	pos      []int
	activity *[]float64
}

// New returns a new, empty heap reading activity scores from the given
// slice. NewVar must be called once per variable before it can be pushed.
func New(activity *[]float64) *Heap {
	return &Heap{
		vars:     []int{},
		pos:      []int{},
		activity: activity,
	}
}

// Init builds the heap from whatever variables have been registered via
// NewVar, in heap order. Call once after all variables are known and before
// the first Pop.
func (h *Heap) Init() {
	n := h.Len()
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// NewVar registers a new variable with the heap and inserts it.
func (h *Heap) NewVar() {
	v := len(h.pos)
	h.pos = append(h.pos, len(h.vars))
	h.vars = append(h.vars, v)
}

// Insert adds v to the heap, sifting it up. It is a no-op if v is already
// present.
func (h *Heap) Insert(v int) {
	if h.InHeap(v) {
		return
	}
	h.pos[v] = len(h.vars)
	h.vars = append(h.vars, v)
	h.up(h.Len() - 1)
}

// Pop removes and returns the variable with the highest activity.
func (h *Heap) Pop() int {
	n := len(h.vars) - 1
	h.swap(0, n)
	h.down(0, n)
	v := h.vars[n]
	h.vars = h.vars[:n]
	h.pos[v] = notPresent

	return v
}

// Update re-sifts v after its activity has changed externally. A no-op if
// v is not currently in the heap.
func (h *Heap) Update(v int) {
	if !h.InHeap(v) {
		return
	}
	i := h.pos[v]

	h.down(i, h.Len())
	h.up(h.pos[v])
}

// InHeap reports whether v is currently in the heap.
func (h *Heap) InHeap(v int) bool {
	return v < len(h.pos) && h.pos[v] != notPresent
}

// Empty reports whether the heap has no elements.
func (h *Heap) Empty() bool {
	return len(h.vars) == 0
}

// Len returns the number of elements in the heap.
func (h *Heap) Len() int {
	return len(h.vars)
}

// less compares activity of the variables at heap slots i and j.
func (h *Heap) less(i, j int) bool {
	return (*h.activity)[h.vars[i]] < (*h.activity)[h.vars[j]]
}

// swap swaps the heap slots i and j, keeping pos in sync.
func (h *Heap) swap(i, j int) {
	vi, vj := h.vars[i], h.vars[j]

	h.vars[i], h.vars[j] = vj, vi
	h.pos[vi], h.pos[vj] = j, i
}

// up percolates the element at slot j upward, as adapted from Go's
// container/heap package.
func (h *Heap) up(j int) {
	for {
		i := (j - 1) / 2
		if i == j || !h.less(i, j) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down percolates the element at slot i0 downward, preferring the right
// child over the left only on strict inequality, matching the reference
// activity heap's tie-break.
func (h *Heap) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h.less(j1, j2) {
			j = j2
		}
		if !h.less(i, j) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
