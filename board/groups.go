package board

// ContiguousGroups partitions the cells whose color is in set into maximal
// 4-connected groups. Groups come out ordered by their first row-major index;
// the order inside a group is discovery order and carries no meaning.
func (g *Grid) ContiguousGroups(set ColorSet) [][]int {
	visited := make([]bool, len(g.cells))
	var groups [][]int
	var stack []int

	matches := func(i int) bool {
		c, ok := g.cells[i].Color()
		return ok && set.Has(c)
	}

	for start := range g.cells {
		if visited[start] || !matches(start) {
			continue
		}

		visited[start] = true
		stack = append(stack[:0], start)
		var group []int
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			group = append(group, i)
			for _, j := range g.Neighbors4(i) {
				if !visited[j] && matches(j) {
					visited[j] = true
					stack = append(stack, j)
				}
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// LargestGroup returns the size of the biggest group over set, or 0.
func (g *Grid) LargestGroup(set ColorSet) int {
	largest := 0
	for _, group := range g.ContiguousGroups(set) {
		if len(group) > largest {
			largest = len(group)
		}
	}
	return largest
}
