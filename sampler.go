package dateinfer

// defaultSampleMax is N_MAX from spec.md §4.5.
const defaultSampleMax = 1000

// sample picks a bounded subsequence of bucketIndices (all known to share
// the majority signature) per spec.md §4.5. If the bucket already fits
// within nMax, every index is returned unchanged. Otherwise a stride pick
// is taken, and up to len(preScanIndices) of its last slots are replaced by
// the pre-scan selections (restricted to indices that are actually in this
// bucket), preserving input order in the final result.
func sample(bucketIndices []int, preScanIndices []int, nMax int) []int {
	if len(bucketIndices) <= nMax {
		return bucketIndices
	}

	inBucket := make(map[int]bool, len(bucketIndices))
	for _, i := range bucketIndices {
		inBucket[i] = true
	}

	var injected []int
	for _, i := range preScanIndices {
		if inBucket[i] {
			injected = append(injected, i)
		}
	}

	stride := ceilDiv(len(bucketIndices), nMax)

	var picks []int
	for i := 0; i < len(bucketIndices); i += stride {
		picks = append(picks, bucketIndices[i])
		if len(picks) == nMax {
			break
		}
	}

	picks = spliceInjections(picks, injected)

	return sortedUnique(picks)
}

// spliceInjections replaces up to len(injected) of picks' last slots with
// the pre-scan selections (spec.md §4.5 step 3), skipping any injection
// already present in picks.
func spliceInjections(picks []int, injected []int) []int {
	present := make(map[int]bool, len(picks))
	for _, p := range picks {
		present[p] = true
	}

	slot := len(picks) - 1
	for _, inj := range injected {
		if present[inj] {
			continue
		}
		if slot < 0 {
			break
		}
		picks[slot] = inj
		present[inj] = true
		slot--
	}
	return picks
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func sortedUnique(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	// Simple insertion sort: picks arrive nearly sorted already (stride
	// order, with a handful of tail replacements), so this stays linear in
	// practice while guaranteeing the output respects input order.
	for i := 1; i < len(out); i++ {
		v := out[i]
		j := i - 1
		for j >= 0 && out[j] > v {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = v
	}
	return out
}
