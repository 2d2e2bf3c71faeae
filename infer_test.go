package dateinfer

import (
	"errors"
	"reflect"
	"testing"
)

// TestInferScenarios exercises the literal input/output table from
// spec.md §8.
func TestInferScenarios(t *testing.T) {
	tests := []struct {
		name           string
		dates          []string
		cfg            Config
		wantFormat     string
		wantConfidence float64
	}{
		{
			name:           "day first with disambiguating evidence",
			dates:          []string{"15/03/2025", "01/02/2025", "28/12/2025"},
			cfg:            DefaultConfig(),
			wantFormat:     "%d/%m/%Y",
			wantConfidence: 1.0,
		},
		{
			name:           "month first preference",
			dates:          []string{"01/02/2025", "03/04/2025"},
			cfg:            Config{DayFirst: false},
			wantFormat:     "%m/%d/%Y",
			wantConfidence: 1.0,
		},
		{
			name:           "iso date",
			dates:          []string{"2025-01-15", "2025-03-20"},
			cfg:            DefaultConfig(),
			wantFormat:     "%Y-%m-%d",
			wantConfidence: 1.0,
		},
		{
			name:           "iso datetime",
			dates:          []string{"2025-03-15T10:30:00"},
			cfg:            DefaultConfig(),
			wantFormat:     "%Y-%m-%dT%H:%M:%S",
			wantConfidence: 1.0,
		},
		{
			name:           "rfc-ish with weekday and timezone",
			dates:          []string{"Mon Jan 13 09:52:52 MST 2014"},
			cfg:            DefaultConfig(),
			wantFormat:     "%a %b %d %H:%M:%S %Z %Y",
			wantConfidence: 1.0,
		},
		{
			name: "dirty data tolerance",
			dates: []string{
				"15/03/2025", "20/04/2025", "", "N/A", "25/12/2025 ",
			},
			cfg:            DefaultConfig(),
			wantFormat:     "%d/%m/%Y",
			wantConfidence: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(tt.dates, tt.cfg)
			if err != nil {
				t.Fatalf("Infer() error = %v", err)
			}
			if got.Format != tt.wantFormat {
				t.Fatalf("Format = %q, want %q", got.Format, tt.wantFormat)
			}
			if got.Confidence != tt.wantConfidence {
				t.Fatalf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestInferStrictValidationFailure(t *testing.T) {
	dates := []string{"15/03/2025", "20/04/2025", "not-a-date"}
	cfg := Config{DayFirst: true, Strict: true}

	_, err := Infer(dates, cfg)
	if err == nil {
		t.Fatalf("Infer() error = nil, want StrictValidationFailed")
	}

	kind, ok := Kind(err)
	if !ok || kind != ErrStrictValidationFailed {
		t.Fatalf("Kind(err) = (%v, %v), want (ErrStrictValidationFailed, true)", kind, ok)
	}

	var ie *InferError
	if !errors.As(err, &ie) {
		t.Fatalf("errors.As failed to extract *InferError")
	}
	if ie.Bad != 1 || ie.BadTotal != 3 {
		t.Fatalf("Bad/BadTotal = %d/%d, want 1/3", ie.Bad, ie.BadTotal)
	}
}

func TestInferFormatConvenienceWrapper(t *testing.T) {
	dates := []string{"15/03/2025", "01/02/2025", "28/12/2025"}

	format, err := InferFormat(dates, true)
	if err != nil {
		t.Fatalf("InferFormat() error = %v", err)
	}
	if format != "%d/%m/%Y" {
		t.Fatalf("InferFormat() = %q, want %%d/%%m/%%Y", format)
	}
}

func TestInferEmptyInput(t *testing.T) {
	_, err := Infer([]string{"", "N/A", "  "}, DefaultConfig())
	kind, ok := Kind(err)
	if !ok || kind != ErrEmptyInput {
		t.Fatalf("Kind(err) = (%v, %v), want (ErrEmptyInput, true)", kind, ok)
	}
}

func TestInferInconsistentFormats(t *testing.T) {
	// Three incompatible shapes, no majority bucket.
	dates := []string{"15/03/2025", "2025-01-15", "Jan 15, 2025"}
	_, err := Infer(dates, DefaultConfig())
	kind, ok := Kind(err)
	if !ok || kind != ErrInconsistentFormats {
		t.Fatalf("Kind(err) = (%v, %v), want (ErrInconsistentFormats, true)", kind, ok)
	}
}

func TestInferLowConfidence(t *testing.T) {
	dates := []string{"15/03/2025", "20/04/2025", "", "N/A", "25/12/2025 "}
	cfg := Config{DayFirst: true, MinConfidence: 0.9}

	_, err := Infer(dates, cfg)
	kind, ok := Kind(err)
	if !ok || kind != ErrLowConfidence {
		t.Fatalf("Kind(err) = (%v, %v), want (ErrLowConfidence, true)", kind, ok)
	}
}

func TestInferUnknownAlphaToken(t *testing.T) {
	dates := []string{"15 Frobuary 2025", "20 Frobuary 2025"}
	_, err := Infer(dates, DefaultConfig())
	kind, ok := Kind(err)
	if !ok || kind != ErrUnknownAlphaToken {
		t.Fatalf("Kind(err) = (%v, %v), want (ErrUnknownAlphaToken, true)", kind, ok)
	}
}

// TestInferIsDeterministic covers spec.md §8 property 2: Infer is a pure
// function of its inputs.
func TestInferIsDeterministic(t *testing.T) {
	dates := []string{"15/03/2025", "01/02/2025", "28/12/2025", "not-a-date"}
	cfg := Config{DayFirst: true, MinConfidence: 0.5}

	first, err1 := Infer(dates, cfg)
	second, err2 := Infer(dates, cfg)

	if !errors.Is(err1, err2) && !reflect.DeepEqual(err1, err2) {
		t.Fatalf("errors differ across calls: %v vs %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ across calls: %+v vs %+v", first, second)
	}
}

// TestInferSampleIndependence covers spec.md §8 property 3: a uniform
// signature bucket resolves identically whether it holds N_MAX copies or
// 10x that many.
func TestInferSampleIndependence(t *testing.T) {
	small := repeatDates("15/03/2025", defaultSampleMax)
	large := repeatDates("15/03/2025", defaultSampleMax*10)

	gotSmall, err := Infer(small, DefaultConfig())
	if err != nil {
		t.Fatalf("Infer(small) error = %v", err)
	}
	gotLarge, err := Infer(large, DefaultConfig())
	if err != nil {
		t.Fatalf("Infer(large) error = %v", err)
	}

	if gotSmall.Format != gotLarge.Format {
		t.Fatalf("formats differ: %q vs %q", gotSmall.Format, gotLarge.Format)
	}
	if gotSmall.Confidence != 1.0 || gotLarge.Confidence != 1.0 {
		t.Fatalf("confidences = %v / %v, want 1.0 / 1.0", gotSmall.Confidence, gotLarge.Confidence)
	}
}

func repeatDates(date string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = date
	}
	return out
}

// TestInferDisambiguationMonotonicity covers spec.md §8 property 4: adding
// an unambiguous example matching the already-resolved format never changes
// that format, and never lowers confidence.
func TestInferDisambiguationMonotonicity(t *testing.T) {
	base := []string{"01/02/2025", "03/04/2025"}
	baseResult, err := Infer(base, DefaultConfig())
	if err != nil {
		t.Fatalf("Infer(base) error = %v", err)
	}

	extended := append(append([]string{}, base...), "15/03/2025")
	extResult, err := Infer(extended, DefaultConfig())
	if err != nil {
		t.Fatalf("Infer(extended) error = %v", err)
	}

	if extResult.Format != baseResult.Format {
		t.Fatalf("format changed after adding disambiguating example: %q -> %q", baseResult.Format, extResult.Format)
	}
	if extResult.Confidence < baseResult.Confidence {
		t.Fatalf("confidence dropped after adding disambiguating example: %v -> %v", baseResult.Confidence, extResult.Confidence)
	}
}

func TestTokensExposesTokenizer(t *testing.T) {
	toks := Tokens("15/03/2025")
	if len(toks) != 5 {
		t.Fatalf("Tokens() returned %d tokens, want 5", len(toks))
	}
}
