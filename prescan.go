package dateinfer

// defaultPreScanK is the default cap on disambiguating examples the
// pre-scan collects (spec.md §4.4 default K=2).
const defaultPreScanK = 2

// preScan performs a single linear, byte-level pass over inputs (spec.md
// §4.4) looking for a 1-2 digit run whose value exceeds 12 - evidence that
// forces a role assignment a day/month-ambiguous sibling can't provide
// (value > 12 can't be a month). It returns up to k indices into inputs,
// in encounter order, and does no tokenization: the scan is bounded to a
// small multiple of total input bytes and its result is discarded once the
// sampler has used it.
func preScan(inputs []string, k int) []int {
	if k <= 0 {
		return nil
	}

	var found []int
	for i, s := range inputs {
		if len(found) >= k {
			break
		}
		if hasDisambiguatingRun(s) {
			found = append(found, i)
		}
	}
	return found
}

// hasDisambiguatingRun scans s byte-by-byte for a 1-2 digit run with value
// > 12, without allocating a token slice.
func hasDisambiguatingRun(s string) bool {
	runLen := 0
	runVal := 0

	flush := func() bool {
		defer func() { runLen, runVal = 0, 0 }()
		return runLen > 0 && runLen <= 2 && runVal > 12
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			runLen++
			runVal = runVal*10 + int(c-'0')
			if runLen > 2 {
				// Longer runs (likely a 4-digit year) can't be the
				// disambiguating day/month evidence this pass looks for;
				// keep accumulating so the byte scan stays single-pass,
				// but flush will reject it on length.
				continue
			}
			continue
		}
		if flush() {
			return true
		}
	}
	return flush()
}
