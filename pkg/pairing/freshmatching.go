// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

/*
maximizeFresh rebuilds a matching that holds as many fresh pairs as the pool allows.

The fresh pairs of partners are kept as the starting matching, rematches are dissolved. Every free player then looks
for an augmenting path of fresh edges, blossoms are contracted the Edmonds way so odd cycles do not hide a path.
A player with no augmenting path never gains one later, so one search per player is enough.
Players still free can only meet each other again, they are paired greedily by staleness.
*/
func maximizeFresh(s scorer, partners []int) {
	n := len(partners)
	adjacent := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if s.fresh(i, j) {
				adjacent[i] = append(adjacent[i], j)
				adjacent[j] = append(adjacent[j], i)
			}
		}
	}

	m := &freshMatching{
		adjacent: adjacent,
		mate:     make([]int, n),
		parent:   make([]int, n),
		base:     make([]int, n),
		used:     make([]bool, n),
		blossom:  make([]bool, n),
		visited:  make([]bool, n),
	}
	for i, j := range partners {
		m.mate[i] = -1
		if j >= 0 && s.fresh(i, j) {
			m.mate[i] = j
		}
	}
	for root := 0; root < n; root++ {
		if m.mate[root] < 0 {
			m.augment(m.findPath(root))
		}
	}

	left := make([]int, 0, n)
	for i := range partners {
		partners[i] = m.mate[i]
		if partners[i] < 0 {
			left = append(left, i)
		}
	}
	for len(left) >= 2 {
		greedyPass(s, left, len(left), partners)
		rest := left[:0]
		for _, i := range left {
			if partners[i] < 0 {
				rest = append(rest, i)
			}
		}
		left = rest
	}
}

type freshMatching struct {
	adjacent [][]int
	mate     []int
	parent   []int
	base     []int
	used     []bool
	blossom  []bool
	visited  []bool
	queue    []int
}

// findPath returns the free end of an augmenting path starting at root, -1 when there is none.
func (m *freshMatching) findPath(root int) int {
	for i := range m.mate {
		m.used[i] = false
		m.parent[i] = -1
		m.base[i] = i
	}
	m.used[root] = true
	m.queue = append(m.queue[:0], root)

	for head := 0; head < len(m.queue); head++ {
		v := m.queue[head]
		for _, to := range m.adjacent[v] {
			if m.base[v] == m.base[to] || m.mate[v] == to {
				continue
			}
			if to == root || (m.mate[to] >= 0 && m.parent[m.mate[to]] >= 0) {
				m.contract(v, to)
				continue
			}
			if m.parent[to] >= 0 {
				continue
			}
			m.parent[to] = v
			if m.mate[to] < 0 {
				return to
			}
			m.used[m.mate[to]] = true
			m.queue = append(m.queue, m.mate[to])
		}
	}
	return -1
}

// contract merges the odd cycle closed by the edge v-to into its base.
func (m *freshMatching) contract(v, to int) {
	current := m.lowestCommonAncestor(v, to)
	for i := range m.blossom {
		m.blossom[i] = false
	}
	m.markPath(v, current, to)
	m.markPath(to, current, v)
	for i := range m.base {
		if !m.blossom[m.base[i]] {
			continue
		}
		m.base[i] = current
		if !m.used[i] {
			m.used[i] = true
			m.queue = append(m.queue, i)
		}
	}
}

func (m *freshMatching) lowestCommonAncestor(a, b int) int {
	for i := range m.visited {
		m.visited[i] = false
	}
	for {
		a = m.base[a]
		m.visited[a] = true
		if m.mate[a] < 0 {
			break
		}
		a = m.parent[m.mate[a]]
	}
	for {
		b = m.base[b]
		if m.visited[b] {
			return b
		}
		b = m.parent[m.mate[b]]
	}
}

func (m *freshMatching) markPath(v, b, child int) {
	for m.base[v] != b {
		m.blossom[m.base[v]] = true
		m.blossom[m.base[m.mate[v]]] = true
		m.parent[v] = child
		child = m.mate[v]
		v = m.parent[m.mate[v]]
	}
}

// augment flips the matched and unmatched edges of the path ending at v.
func (m *freshMatching) augment(v int) {
	for v >= 0 {
		pv := m.parent[v]
		next := m.mate[pv]
		m.mate[v] = pv
		m.mate[pv] = v
		v = next
	}
}
