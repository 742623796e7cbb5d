// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	"math/bits"
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/AccelByte/extend-arena-pairing/pkg/constants"
	"github.com/AccelByte/extend-arena-pairing/pkg/models"
)

/*
score of a pairing or of a whole matching, compared lexicographically:

  - pairs: number of pairs, nobody is left out when a partner exists
  - fresh: number of pairs that did not meet recently
  - staleness: for rematches, how long ago they met, older is better
  - preference: rank weight scaled by how close the two players are in the pool

Addition is component wise, so the best matching is the one with the greatest sum.
*/
type score struct {
	pairs      int
	fresh      int
	staleness  int
	preference int
}

func (s score) add(o score) score {
	return score{
		pairs:      s.pairs + o.pairs,
		fresh:      s.fresh + o.fresh,
		staleness:  s.staleness + o.staleness,
		preference: s.preference + o.preference,
	}
}

func (s score) greater(o score) bool {
	if s.pairs != o.pairs {
		return s.pairs > o.pairs
	}
	if s.fresh != o.fresh {
		return s.fresh > o.fresh
	}
	if s.staleness != o.staleness {
		return s.staleness > o.staleness
	}
	return s.preference > o.preference
}

type edge struct {
	i, j  int
	score score
}

type scorer struct {
	players models.RankedPlayers
	history models.LastOpponents
	weight  RankWeight
}

func newScorer(players models.RankedPlayers, history models.LastOpponents) scorer {
	return scorer{
		players: players,
		history: history,
		weight:  RankFactorFor(players),
	}
}

// pairScore scores players i and j, i < j, by their index in the rank ordered pool.
func (s scorer) pairScore(i, j int) score {
	a, b := s.players[i], s.players[j]
	sc := score{
		pairs:      1,
		preference: s.weight(a, b) * (len(s.players) - (j - i)),
	}
	if recency := s.history.Recency(a.UserID, b.UserID); recency >= 0 {
		sc.staleness = recency + 1
	} else {
		sc.fresh = 1
	}
	return sc
}

func (s scorer) fresh(i, j int) bool {
	return !s.history.MetRecently(s.players[i].UserID, s.players[j].UserID)
}

/*
SmallPoolMatch returns the best matching of the pool by exhaustive search.

Every pair of the pool is a candidate. best[mask] holds the best matching of the players outside of mask,
it is built from the full mask down to the empty one: the lowest free player is either left out or paired with
any other free player. Ties keep the first candidate found, so the result only depends on the inputs.

Pools larger than constants.ExhaustiveSearchMaxSize are matched with LargePoolMatch over the whole pool.
*/
func SmallPoolMatch(players models.RankedPlayers, history models.LastOpponents) []models.Prep {
	n := len(players)
	if n < 2 {
		return nil
	}
	if n > constants.ExhaustiveSearchMaxSize {
		return LargePoolMatch(players, history, n)
	}

	s := newScorer(players, history)
	edges := make([][]score, n)
	for i := range edges {
		edges[i] = make([]score, n)
	}
	for _, c := range combin.Combinations(n, 2) {
		edges[c[0]][c[1]] = s.pairScore(c[0], c[1])
	}

	full := 1<<n - 1
	best := make([]score, full+1)
	partner := make([]int, full+1)
	for mask := full - 1; mask >= 0; mask-- {
		i := bits.TrailingZeros(uint(^mask))
		rest := mask | 1<<i
		bestScore, bestPartner := best[rest], -1
		for j := i + 1; j < n; j++ {
			if mask&(1<<j) != 0 {
				continue
			}
			candidate := edges[i][j].add(best[rest|1<<j])
			if candidate.greater(bestScore) {
				bestScore, bestPartner = candidate, j
			}
		}
		best[mask], partner[mask] = bestScore, bestPartner
	}

	preps := make([]models.Prep, 0, n/2)
	for mask := 0; mask != full; {
		i := bits.TrailingZeros(uint(^mask))
		j := partner[mask]
		if j < 0 {
			mask |= 1 << i
			continue
		}
		preps = append(preps, models.Prep{User1: players[i].UserID, User2: players[j].UserID})
		mask |= 1<<i | 1<<j
	}
	return preps
}

/*
LargePoolMatch returns a greedy matching of the pool.

Each player is a candidate partner of its next window rank neighbours. Candidate pairs are taken best score first
while both players are free. Players left over are matched again among themselves until fewer than two remain,
then rematches are swapped away wherever another pair allows it. A rematch that survives the swaps triggers a full
augmenting path search, so a rematch is only formed when no matching of the pool avoids it.
*/
func LargePoolMatch(players models.RankedPlayers, history models.LastOpponents, window int) []models.Prep {
	n := len(players)
	if n < 2 {
		return nil
	}
	if window < 1 {
		window = 1
	}

	s := newScorer(players, history)
	partners := make([]int, n)
	remaining := make([]int, n)
	for i := range partners {
		partners[i] = -1
		remaining[i] = i
	}

	for len(remaining) >= 2 {
		greedyPass(s, remaining, window, partners)
		left := remaining[:0]
		for _, i := range remaining {
			if partners[i] < 0 {
				left = append(left, i)
			}
		}
		remaining = left
	}

	repairRematches(s, partners)
	if hasRematch(s, partners) {
		maximizeFresh(s, partners)
	}

	preps := make([]models.Prep, 0, n/2)
	for i, j := range partners {
		if j > i {
			preps = append(preps, models.Prep{User1: players[i].UserID, User2: players[j].UserID})
		}
	}
	return preps
}

// greedyPass pairs the candidates, indexes into the pool in rank order, greedily by score.
func greedyPass(s scorer, candidates []int, window int, partners []int) {
	edges := buffers.edges.Get()[:0]
	defer func() { buffers.edges.Put(edges[:0]) }()

	for x := 0; x < len(candidates); x++ {
		for y := x + 1; y < len(candidates) && y <= x+window; y++ {
			i, j := candidates[x], candidates[y]
			edges = append(edges, edge{i: i, j: j, score: s.pairScore(i, j)})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].score.greater(edges[b].score)
	})

	for _, e := range edges {
		if partners[e.i] >= 0 || partners[e.j] >= 0 {
			continue
		}
		partners[e.i], partners[e.j] = e.j, e.i
	}
}

func hasRematch(s scorer, partners []int) bool {
	for i, j := range partners {
		if j > i && !s.fresh(i, j) {
			return true
		}
	}
	return false
}

// repairRematches exchanges partners between a rematch and another pair, or the unpaired player,
// when every pair formed by the exchange is fresh.
func repairRematches(s scorer, partners []int) {
	for a := range partners {
		b := partners[a]
		if b < a || s.fresh(a, b) {
			continue
		}
		for c := range partners {
			if c == a || c == b {
				continue
			}
			d := partners[c]
			switch {
			case d < 0:
				if s.fresh(a, c) {
					partners[a], partners[c], partners[b] = c, a, -1
				} else if s.fresh(b, c) {
					partners[b], partners[c], partners[a] = c, b, -1
				} else {
					continue
				}
			case d < c || d == a || d == b:
				continue
			case s.fresh(a, c) && s.fresh(b, d):
				partners[a], partners[c], partners[b], partners[d] = c, a, d, b
			case s.fresh(a, d) && s.fresh(b, c):
				partners[a], partners[d], partners[b], partners[c] = d, a, c, b
			default:
				continue
			}
			break
		}
	}
}
