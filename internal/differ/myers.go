package differ

import (
	"github.com/aleister1102/redline/internal/common/errorwrapper"
	"github.com/aleister1102/redline/internal/models"
)

// errEditDistanceExceeded signals that the shortest edit script is longer
// than the configured cap and a coarse fallback should be used instead.
var errEditDistanceExceeded = errorwrapper.NewError("edit distance exceeds configured maximum")

// myersDiff computes the shortest edit script transforming oldTokens into
// newTokens using the Myers O(ND) greedy algorithm. The frontier of
// furthest-reached x values is recorded per edit distance d so the script can
// be reconstructed by backtracking. maxD caps the search; maxD <= 0 means
// unbounded.
func myersDiff(oldTokens, newTokens []models.Token, maxD int) ([]models.DiffOperation, error) {
	n := len(oldTokens)
	m := len(newTokens)

	if n == 0 && m == 0 {
		return nil, nil
	}
	if n == 0 {
		ops := make([]models.DiffOperation, m)
		for i, tok := range newTokens {
			ops[i] = models.DiffOperation{Kind: models.DiffInsert, Text: tok.Text, SourceIndex: i}
		}
		return ops, nil
	}
	if m == 0 {
		ops := make([]models.DiffOperation, n)
		for i, tok := range oldTokens {
			ops[i] = models.DiffOperation{Kind: models.DiffDelete, Text: tok.Text, SourceIndex: i}
		}
		return ops, nil
	}

	max := n + m
	limit := max
	if maxD > 0 && maxD < limit {
		limit = maxD
	}
	size := 2*max + 1

	// v[k+max] holds the furthest x reached on diagonal k = x - y.
	v := make([]int, size)

	// trace[d] is a snapshot of v after processing edit distance d.
	trace := make([][]int, 0, limit+1)

	for d := 0; d <= limit; d++ {
		for k := -d; k <= d; k += 2 {
			idx := k + max

			var x int
			if k == -d || (k != d && v[idx-1] < v[idx+1]) {
				x = v[idx+1] // move down (insert)
			} else {
				x = v[idx-1] + 1 // move right (delete)
			}
			y := x - k

			// Follow the diagonal through equal tokens.
			for x < n && y < m && oldTokens[x].Text == newTokens[y].Text {
				x++
				y++
			}

			v[idx] = x

			if x >= n && y >= m {
				snap := make([]int, size)
				copy(snap, v)
				trace = append(trace, snap)
				return backtrack(trace, oldTokens, newTokens, d), nil
			}
		}

		snap := make([]int, size)
		copy(snap, v)
		trace = append(trace, snap)
	}

	return nil, errEditDistanceExceeded
}

// backtrack walks the recorded frontiers from (n, m) back to (0, 0),
// reconstructing the edit script in reverse.
func backtrack(trace [][]int, oldTokens, newTokens []models.Token, dFinal int) []models.DiffOperation {
	n := len(oldTokens)
	m := len(newTokens)
	max := n + m

	x := n
	y := m

	var ops []models.DiffOperation

	for d := dFinal; d > 0; d-- {
		k := x - y
		idx := k + max
		vPrev := trace[d-1]

		var prevK int
		if k == -d || (k != d && vPrev[idx-1] < vPrev[idx+1]) {
			prevK = k + 1 // came from an insert (down move)
		} else {
			prevK = k - 1 // came from a delete (right move)
		}

		prevX := vPrev[prevK+max]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			ops = append(ops, models.DiffOperation{Kind: models.DiffEqual, Text: oldTokens[x].Text, SourceIndex: x})
		}

		if k == prevK+1 {
			x--
			ops = append(ops, models.DiffOperation{Kind: models.DiffDelete, Text: oldTokens[x].Text, SourceIndex: x})
		} else {
			y--
			ops = append(ops, models.DiffOperation{Kind: models.DiffInsert, Text: newTokens[y].Text, SourceIndex: y})
		}
	}

	// Leading diagonal before the first edit.
	for x > 0 && y > 0 {
		x--
		y--
		ops = append(ops, models.DiffOperation{Kind: models.DiffEqual, Text: oldTokens[x].Text, SourceIndex: x})
	}

	reverseOps(ops)
	return ops
}

func reverseOps(ops []models.DiffOperation) {
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
}
