package unisig

// collapse returns the keys of positions 0..n-1 with consecutive duplicates
// removed. It never returns two equal neighbours.
func collapse[T comparable](n int, key func(i int) T) []T {
	var out []T
	for i := 0; i < n; i++ {
		k := key(i)
		if len(out) > 0 && out[len(out)-1] == k {
			continue
		}
		out = append(out, k)
	}
	return out
}

// countRuns scans the tokens once and emits a Run every time the next token
// differs from the current one or the input ends.
func countRuns(n int, key func(i int) Token) []Run {
	var (
		runs   []Run
		length int
	)
	for i := 0; i < n; i++ {
		current := key(i)
		length++
		if i+1 < n && key(i+1) == current {
			continue
		}
		runs = append(runs, Run{
			Position: len(runs),
			Counts:   map[Token]int{current: length},
		})
		length = 0
	}
	return runs
}
