// Package dateinfer infers a strptime-style date/time format string from a
// list of example date strings drawn from a homogeneous source, using
// consensus across the collection to disambiguate individually-ambiguous
// examples (day-first vs month-first, 2-digit vs 4-digit years, and so on).
//
// The three entry points are Infer, InferFormat, and (in the sibling batch
// package) InferBatch. None of them parse a date into a timestamp; they
// only describe the format the collection appears to share.
package dateinfer

// Config controls one call to Infer, mirroring the three named parameters
// of spec.md §6 (dayFirst, minConfidence, strict). DefaultConfig sets
// DayFirst to true and leaves MinConfidence and Strict at their zero values.
type Config struct {
	// DayFirst breaks a genuine day/month tie (spec.md §4.6 rule 3) in
	// favor of day-first when true, month-first when false.
	DayFirst bool
	// MinConfidence fails the call if the resolved format's confidence
	// falls below this threshold.
	MinConfidence float64
	// Strict re-validates every non-sentinel input against the resolved
	// format (spec.md §4.8) and fails the call if any disagree.
	Strict bool
}

// DefaultConfig returns the spec's documented defaults: day-first
// preferred, no confidence floor, no strict re-validation.
func DefaultConfig() Config {
	return Config{DayFirst: true, MinConfidence: 0, Strict: false}
}

// Result is the outcome of a successful Infer call (spec.md §3).
type Result struct {
	// Format is the inferred strptime-style format string.
	Format string
	// Confidence is the fraction of all raw inputs (sentinels included in
	// the denominator) that matched the winning structural bucket, in
	// [0, 1].
	Confidence float64
	// TokenTypes names the resolved role (or literal) of each position, in
	// order, e.g. ["Day", "Literal('/')", "Month", "Literal('/')", "Year4"].
	TokenTypes []string
}

// Tokens tokenizes a single date string, exposing the tokenizer stage for
// introspection, debugging and tests.
func Tokens(date string) []Token {
	return Tokenize(date)
}

// Infer runs the full pipeline of spec.md §2 over dates and returns the
// consensus format, or one of the errors in spec.md §7.
func Infer(dates []string, cfg Config) (Result, error) {
	buckets, tokensByIndex, nonSentinel := bucketize(dates)
	if nonSentinel == 0 {
		return Result{}, errEmptyInput()
	}

	winner, ok := selectMajorityBucket(buckets)
	if !ok {
		return Result{}, errEmptyInput()
	}
	if len(winner.indices)*2 <= nonSentinel {
		return Result{}, errInconsistentFormats(len(winner.indices), nonSentinel)
	}

	// Confidence is penalized by the full input count, not just the
	// non-sentinel ones: a column that is mostly blank/sentinel rows should
	// read as less trustworthy even though the majority check above (which
	// guards against genuinely inconsistent formats) only looks at the
	// non-sentinel population (spec.md §8's dirty-data scenario: 3 clean
	// dates among 5 raw rows yields confidence 0.6, not 1.0).
	confidence := float64(len(winner.indices)) / float64(len(dates))

	if err := checkAlphaEligibility(winner, tokensByIndex); err != nil {
		return Result{}, err
	}

	preScanIdx := preScan(dates, defaultPreScanK)
	sampled := sample(winner.indices, preScanIdx, defaultSampleMax)

	slots, err := resolve(winner.sig, sampled, tokensByIndex, cfg.DayFirst)
	if err != nil {
		return Result{}, err
	}

	format, tokenTypes := assemble(slots)

	if confidence < cfg.MinConfidence {
		return Result{}, errLowConfidence(confidence, cfg.MinConfidence)
	}

	if cfg.Strict {
		if bad, total := validateStrict(dates, winner.sig, slots); bad > 0 {
			return Result{}, errStrictValidationFailed(bad, total)
		}
	}

	return Result{Format: format, Confidence: confidence, TokenTypes: tokenTypes}, nil
}

// InferFormat is the convenience entry point from spec.md §6, returning
// only the inferred format string.
func InferFormat(dates []string, dayFirst bool) (string, error) {
	cfg := DefaultConfig()
	cfg.DayFirst = dayFirst

	result, err := Infer(dates, cfg)
	if err != nil {
		return "", err
	}
	return result.Format, nil
}

// checkAlphaEligibility implements spec.md §4.2's "unknown alphas make the
// entire signature bucket ineligible" over every member of the winning
// bucket, not just the sampled subset, so an unrecognized month/weekday
// spelling is caught even if the sampler would otherwise skip it.
func checkAlphaEligibility(winner bucket, tokensByIndex map[int][]Token) error {
	for _, idx := range winner.indices {
		for _, tok := range tokensByIndex[idx] {
			if tok.Kind != Alpha {
				continue
			}
			if _, ok := EnumerateAlpha(tok.Text); !ok {
				return errUnknownAlphaToken(tok.Literal)
			}
		}
	}
	return nil
}
