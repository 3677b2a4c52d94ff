package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inventory-release/internal/advisor"
	"inventory-release/internal/model"
)

const paperScenario = `name: paper
policy: {q: 200, min_price: 30, max_price: 40, a: 100, b: 1}
prices: [38, 35, 32, 36, 37]
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paper.yaml")
	if err := os.WriteFile(path, []byte(paperScenario), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runApp(t *testing.T, args ...string) string {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	if err := app.Run(append([]string{"release"}, args...)); err != nil {
		t.Fatalf("run %v: %v", args, err)
	}
	return out.String()
}

func TestSimulateCommand(t *testing.T) {
	cfg := writeScenario(t)
	csvPath := filepath.Join(t.TempDir(), "out", "ledger.csv")
	out := runApp(t, "simulate", "--config", cfg, "--out", csvPath)
	if !strings.Contains(out, "Wrote 5 rows") || !strings.Contains(out, "liquidation") {
		t.Errorf("output:\n%s", out)
	}
	if _, err := os.Stat(csvPath); err != nil {
		t.Errorf("ledger not written: %v", err)
	}
}

func TestOfflineAndCompareCommands(t *testing.T) {
	cfg := writeScenario(t)
	if out := runApp(t, "offline", "--config", cfg); !strings.Contains(out, "Shadow price") {
		t.Errorf("offline output:\n%s", out)
	}
	out := runApp(t, "compare", "--config", cfg)
	for _, name := range []string{"alg-ir", "offline", "uniform"} {
		if !strings.Contains(out, name) {
			t.Errorf("compare output missing %s:\n%s", name, out)
		}
	}
}

func TestRankCommand(t *testing.T) {
	cfg := writeScenario(t)
	out := runApp(t, "rank", filepath.Dir(cfg))
	if !strings.Contains(out, "paper") {
		t.Errorf("rank output:\n%s", out)
	}
}

func TestRunAdvise(t *testing.T) {
	sess, err := advisor.NewSession(model.PolicyParams{Q: 200, MinPrice: 30, MaxPrice: 45, A: 250, B: 5})
	if err != nil {
		t.Fatal(err)
	}
	// day 1: bad input, then 40; day 2: low price re-entered as 38; day 3: last day.
	in := strings.NewReader("abc\n40\nn\n3\nn\n38\nn\n35\ny\n")
	var out bytes.Buffer
	if err := runAdvise(sess, in, &out); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	if !strings.Contains(text, "Please enter a number.") || !strings.Contains(text, "looks low") {
		t.Errorf("missing prompts:\n%s", text)
	}
	if !strings.Contains(text, "liquidation") || !sess.Closed() || sess.Remaining() != 0 {
		t.Errorf("session not liquidated:\n%s", text)
	}
}

func TestRunAdvise_EOF(t *testing.T) {
	sess, _ := advisor.NewSession(model.PolicyParams{Q: 50, MinPrice: 30, MaxPrice: 45, A: 250, B: 5})
	if err := runAdvise(sess, strings.NewReader("40\n"), &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if sess.Closed() {
		t.Error("session closed on EOF")
	}
}
