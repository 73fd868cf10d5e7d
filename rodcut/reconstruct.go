package rodcut

// reconstruct walks from length down to 0, emitting the recorded first piece
// of each remaining length and subtracting it.
//
// firstPiece(n) must return a value in 1..n for every n the walk reaches,
// which both strategies guarantee once the sub-length has been solved.
// The result is in taken order and is non-nil (empty for length 0).
//
// Complexity: O(length).
func reconstruct(length int, firstPiece func(n int) int) []int {
	cuts := make([]int, 0, length)

	var (
		remaining = length
		piece     int
	)
	for remaining > 0 {
		piece = firstPiece(remaining)
		cuts = append(cuts, piece)
		remaining -= piece
	}

	return cuts
}

// numberOfCuts counts the cut boundaries of a partition.
func numberOfCuts(cuts []int) int {
	if len(cuts) > 1 {
		return len(cuts) - 1
	}

	return 0
}
