package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPriceSeries_Formats(t *testing.T) {
	cases := []struct {
		file, body, name string
	}{
		{"paper.json", `{"name":"paper","prices":[38,35,32,36,37]}`, "paper"},
		{"paper.yaml", "name: paper\nprices: [38, 35, 32, 36, 37]\n", "paper"},
		{"daily.csv", "day,price\n1,38\n2,35\n3,32\n4,36\n5,37\n", "daily"},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			s, err := LoadPriceSeries(writeFile(t, tc.file, tc.body))
			if err != nil {
				t.Fatal(err)
			}
			if s.Name != tc.name {
				t.Errorf("name = %q, want %q", s.Name, tc.name)
			}
			want := []float64{38, 35, 32, 36, 37}
			if len(s.Prices) != len(want) {
				t.Fatalf("prices = %v", s.Prices)
			}
			for i := range want {
				if s.Prices[i] != want[i] {
					t.Errorf("price[%d] = %v, want %v", i, s.Prices[i], want[i])
				}
			}
		})
	}
}

func TestLoadPriceSeries_Errors(t *testing.T) {
	if _, err := LoadPriceSeries(writeFile(t, "p.txt", "38")); err == nil {
		t.Error("expected unsupported extension error")
	}
	if _, err := LoadPriceSeries(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected missing file error")
	}
}

func TestDecodeCSV_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"no column": "day,value\n1,2\n",
		"bad value": "price\nabc\n",
	}
	for name, body := range cases {
		if _, err := DecodeCSV(strings.NewReader(body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
