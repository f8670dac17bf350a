package label

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		code     string
		expected Symbol
	}{
		{name: "test_upper", code: "USD", expected: USD},
		{name: "test_lower", code: "eur", expected: EUR},
		{name: "test_mixed_spaces", code: "  gBp\t", expected: GBP},
		{name: "test_empty", code: "", expected: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.expected, Normalize(tc.code)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSymbols(t *testing.T) {
	t.Parallel()

	got := Symbols("usd", " try ", "Xdr")
	if diff := cmp.Diff([]Symbol{USD, TRY, XDR}, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}
