package feed

// Combinations lazily yields the k-element subsets of {0..n-1} as ascending
// index slices in lexicographic order. k == 0 yields one empty subset;
// k > n yields nothing.
type Combinations struct {
	n, k    int
	idx     []int
	started bool
	done    bool
}

// NewCombinations returns a generator over n choose k.
func NewCombinations(n, k int) *Combinations {
	return &Combinations{n: n, k: k}
}

// Next returns the next subset. The slice is owned by the caller.
func (c *Combinations) Next() ([]int, bool) {
	if c.done {
		return nil, false
	}

	if !c.started {
		c.started = true
		if c.k < 0 || c.k > c.n {
			c.done = true
			return nil, false
		}
		c.idx = make([]int, c.k)
		for i := range c.idx {
			c.idx[i] = i
		}
		return c.current(), true
	}

	i := c.k - 1
	for i >= 0 && c.idx[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		c.done = true
		return nil, false
	}
	c.idx[i]++
	for j := i + 1; j < c.k; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}
	return c.current(), true
}

func (c *Combinations) current() []int {
	out := make([]int, len(c.idx))
	copy(out, c.idx)
	return out
}
