package board

import "fmt"

// SizePolicy bounds the dimensions a loader accepts. The scoring algorithms
// only need positive dimensions; stricter rulesets use a larger minimum.
type SizePolicy struct {
	MinRows int
	MinCols int
}

var (
	DefaultSizePolicy = SizePolicy{MinRows: 1, MinCols: 1}
	StrictSizePolicy  = SizePolicy{MinRows: 3, MinCols: 3}
)

// Check reports whether rows x cols satisfies the policy.
func (p SizePolicy) Check(rows, cols int) error {
	minRows, minCols := max(p.MinRows, 1), max(p.MinCols, 1)
	if rows < minRows || cols < minCols {
		return fmt.Errorf("grid %dx%d is smaller than the minimum %dx%d", rows, cols, minRows, minCols)
	}
	return nil
}
