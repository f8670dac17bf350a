package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/robotomize/kurlar"
	"github.com/robotomize/kurlar/rate"
	"github.com/stretchr/testify/require"
)

const testDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Tarih_Date Tarih="05.03.2024" Date="03/05/2024" Bulten_No="2024/45">
	<Currency CrossOrder="0" Kod="USD" CurrencyCode="USD">
		<Unit>1</Unit>
		<Isim>ABD DOLARI</Isim>
		<CurrencyName>US DOLLAR</CurrencyName>
		<ForexBuying>31.9512</ForexBuying>
		<ForexSelling>32.0088</ForexSelling>
		<BanknoteBuying>31.9288</BanknoteBuying>
		<BanknoteSelling>32.0568</BanknoteSelling>
	</Currency>
	<Currency CrossOrder="1" Kod="EUR" CurrencyCode="EUR">
		<Unit>1</Unit>
		<Isim>EURO</Isim>
		<CurrencyName>EURO</CurrencyName>
		<ForexBuying>34.6790</ForexBuying>
		<ForexSelling>34.7415</ForexSelling>
		<BanknoteBuying></BanknoteBuying>
		<BanknoteSelling></BanknoteSelling>
	</Currency>
</Tarih_Date>`

func testServer(t *testing.T) string {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/kurlar/today.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(testDocument))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "kurlar.yaml")
	content := "base_url: " + srv.URL + "/kurlar/\nrequest_timeout: 5s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRealMain_Table(t *testing.T) {
	path := testServer(t)

	var stdout, stderr bytes.Buffer
	err := realMain(context.Background(), []string{"-config", path, "-codes", "eur"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	require.Contains(t, out, "Date: 03/05/2024")
	require.Contains(t, out, "EUR")
	require.Contains(t, out, "34.679")
	require.NotContains(t, out, "US DOLLAR")
}

func TestRealMain_Convert(t *testing.T) {
	path := testServer(t)

	var stdout, stderr bytes.Buffer
	err := realMain(
		context.Background(),
		[]string{"-config", path, "-amount", "10", "-from", "usd", "-to", "try", "-class", "banknote"},
		&stdout,
		&stderr,
	)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "10 USD = 320.56")
	require.Contains(t, stdout.String(), "TRY (banknote, to_reference)")
}

func TestRealMain_Errors(t *testing.T) {
	path := testServer(t)

	testCases := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "test_invalid_date",
			args:    []string{"-config", path, "-date", "2024-03-05"},
			wantErr: kurlar.ErrInvalidDateFormat,
		},
		{
			name:    "test_missing_document",
			args:    []string{"-config", path, "-date", "09-03-2024"},
			wantErr: kurlar.ErrFetchFailed,
		},
		{
			name:    "test_unavailable_rate",
			args:    []string{"-config", path, "-from", "TRY", "-to", "EUR", "-class", "banknote"},
			wantErr: kurlar.ErrRateUnavailable,
		},
		{
			name:    "test_unknown_class",
			args:    []string{"-config", path, "-class", "gold"},
			wantErr: rate.ErrClassNotValid,
		},
		{
			name: "test_from_without_to",
			args: []string{"-config", path, "-from", "USD"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := realMain(context.Background(), tc.args, &stdout, &stderr)
			require.Error(t, err)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
