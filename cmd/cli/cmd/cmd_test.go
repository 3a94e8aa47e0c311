package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd, calculateCmd, configCmd, configShowCmd, configInitCmd, versionCmd)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags puts every flag back to its default so one run's flags do
// not leak into the next.
func resetFlags(cmds ...*cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range cmds {
		c.PersistentFlags().VisitAll(reset)
		c.Flags().VisitAll(reset)
	}
}

func TestCalculateWritesReport(t *testing.T) {
	dir := t.TempDir()
	input := strings.Join([]string{
		"Biscuits", "10",
		"flour", "", "2", "xxx",
		"no",
		"$30",
		"1",
	}, "\n") + "\n"

	out, err := execute(t, input,
		"calculate", "--no-color", "--skip-instructions", "--output-dir", dir)
	if err != nil {
		t.Fatalf("calculate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "*** Suggested Selling Price: $5.00 ***") {
		t.Errorf("missing suggested price:\n%s", out)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "Biscuits_*.txt"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one report file, got %v (%v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "Minimum Selling Price: $5.00") {
		t.Errorf("report file missing minimum price:\n%s", data)
	}
}

func TestCalculateCancelledByClosedInput(t *testing.T) {
	out, err := execute(t, "Biscuits\n",
		"calculate", "--no-color", "--skip-instructions", "--no-report")
	if err == nil {
		t.Fatal("expected an error when input ends early")
	}
	if !strings.Contains(out, "Calculation cancelled") {
		t.Errorf("missing cancellation notice:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "fundraiser version "+Version) {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestCalculateNoReportWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := "Biscuits\n10\nflour\n\n2\nxxx\nno\n$30\n1\n"

	out, err := execute(t, input,
		"calculate", "--no-color", "--skip-instructions", "--no-report", "--output-dir", dir)
	if err != nil {
		t.Fatalf("calculate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "reports are disabled") {
		t.Errorf("missing disabled-report notice:\n%s", out)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files, found %d", len(entries))
	}
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	dir := t.TempDir()
	input := "Biscuits\n10\nflour\n\n2\nxxx\nno\n$30\n1\n"

	t.Run("first run", func(t *testing.T) {
		_, err := execute(t, input,
			"calculate", "--no-color", "--skip-instructions", "--output-dir", dir)
		if err != nil {
			t.Fatalf("calculate: %v", err)
		}
	})

	if noColor || outputDir != "" || skipInstructions {
		t.Errorf("flag values leaked: no-color %v, output-dir %q, skip-instructions %v",
			noColor, outputDir, skipInstructions)
	}
	for _, name := range []string{"output-dir", "skip-instructions"} {
		if calculateCmd.Flags().Changed(name) {
			t.Errorf("--%s still marked as changed", name)
		}
	}
}
