package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/expense"
	"github.com/etnz/expense/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

func TestAdd(t *testing.T) {
	name := createTempLedger(t, coffeeLine+"\n")
	out := captureStdout(t)

	status := execute(t, &addCmd{}, "-d", "Lunch", "-a", "12.30", "-c", "Food")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	want := coffeeLine + "\n" + expense.NewRecordOn(date.Today(), "Lunch", decimal.RequireFromString("12.3"), "Food").Encode() + "\n"
	if got := readFile(t, name); got != want {
		t.Errorf("ledger mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
	if got, want := out.String(), "Expense added to "+name+"\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestAdd_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "missing amount", args: []string{"-d", "Lunch"}},
		{name: "invalid amount", args: []string{"-d", "Lunch", "-a", "twelve"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name := createTempLedger(t, "")
			captureStdout(t)
			if status := execute(t, &addCmd{}, tc.args...); status != subcommands.ExitUsageError {
				t.Errorf("Expected ExitUsageError, got %v", status)
			}
			if _, err := os.Stat(name); !os.IsNotExist(err) {
				t.Errorf("ledger file should not have been created: %v", err)
			}
		})
	}
}

func TestView(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want []string // descriptions in display order
	}{
		{name: "file order", want: []string{"Coffee", "Rent", "Cinema"}},
		{name: "by date", args: []string{"-sort", "date"}, want: []string{"Rent", "Coffee", "Cinema"}},
		{name: "by amount", args: []string{"-sort", "amount"}, want: []string{"Coffee", "Cinema", "Rent"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			content := coffeeLine + "\n" + rentLine + "\n" + cinemaLine + "\n"
			name := createTempLedger(t, content)
			out := captureStdout(t)

			if status := execute(t, &viewCmd{}, tc.args...); status != subcommands.ExitSuccess {
				t.Fatalf("Expected ExitSuccess, got %v", status)
			}
			if got := rowDescriptions(out.String()); strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Errorf("rows = %v, want %v", got, tc.want)
			}
			if got := readFile(t, name); got != content {
				t.Errorf("view without -w modified the ledger:\n%s", got)
			}
		})
	}
}

func TestView_Write(t *testing.T) {
	name := createTempLedger(t, coffeeLine+"\n"+rentLine+"\n")
	captureStdout(t)

	if status := execute(t, &viewCmd{}, "-sort", "date", "-w"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if got, want := readFile(t, name), rentLine+"\n"+coffeeLine+"\n"; got != want {
		t.Errorf("ledger mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestView_WriteKeepsDatesWithRestamp(t *testing.T) {
	name := createTempLedger(t, coffeeLine+"\n"+rentLine+"\n")
	captureStdout(t)
	on := true
	old := restamp
	restamp = &on
	defer func() { restamp = old }()

	if status := execute(t, &viewCmd{}, "-sort", "amount", "-w"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if got, want := readFile(t, name), coffeeLine+"\n"+rentLine+"\n"; got != want {
		t.Errorf("ledger mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestView_Empty(t *testing.T) {
	createTempLedger(t, "")
	out := captureStdout(t)

	if status := execute(t, &viewCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if got, want := out.String(), "No expenses recorded yet.\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFilter(t *testing.T) {
	testCases := []struct {
		name       string
		start, end string
		wantStatus subcommands.ExitStatus
		want       []string
		wantOutput string
	}{
		{name: "january", start: "2025-01-01", end: "2025-01-31", wantStatus: subcommands.ExitSuccess, want: []string{"Coffee", "Rent"}},
		{name: "single day", start: "2025-02-14", end: "2025-02-14", wantStatus: subcommands.ExitSuccess, want: []string{"Cinema"}},
		{
			name: "nothing", start: "2024-01-01", end: "2024-12-31", wantStatus: subcommands.ExitSuccess,
			wantOutput: "No expenses found between 2024-01-01 and 2024-12-31\n",
		},
		{name: "invalid date", start: "2025-13-45", end: "2025-01-31", wantStatus: subcommands.ExitUsageError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			createTempLedger(t, coffeeLine+"\n"+rentLine+"\n"+cinemaLine+"\n")
			out := captureStdout(t)

			if status := execute(t, &filterCmd{}, "-s", tc.start, "-e", tc.end); status != tc.wantStatus {
				t.Fatalf("status = %v, want %v", status, tc.wantStatus)
			}
			if tc.wantOutput != "" {
				if out.String() != tc.wantOutput {
					t.Errorf("output = %q, want %q", out.String(), tc.wantOutput)
				}
				return
			}
			if got := rowDescriptions(out.String()); strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Errorf("rows = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	testCases := []struct {
		target string
		want   string
	}{
		{target: "2000", want: "Total expenses: $1204.5\nYou are on track! Savings: $795.5\n"},
		{target: "1204.5", want: "Total expenses: $1204.5\nYou are on track! Savings: $0\n"},
		{target: "1000", want: "Total expenses: $1204.5\nYou have exceeded your target by: $204.5\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.target, func(t *testing.T) {
			createTempLedger(t, coffeeLine+"\n"+rentLine+"\n")
			out := captureStdout(t)

			if status := execute(t, &progressCmd{}, "-target", tc.target); status != subcommands.ExitSuccess {
				t.Fatalf("Expected ExitSuccess, got %v", status)
			}
			if out.String() != tc.want {
				t.Errorf("output = %q, want %q", out.String(), tc.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	createTempLedger(t, coffeeLine+"\n"+rentLine+"\n")
	out := captureStdout(t)
	never := "never"
	old := colorMode
	colorMode = &never
	defer func() { colorMode = old }()

	if status := execute(t, &summaryCmd{}, "-target", "2000"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	for _, want := range []string{"Housing", "$1200.00", "$795.50"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary does not contain %q:\n%s", want, out.String())
		}
	}
}

func TestSummary_ZeroTarget(t *testing.T) {
	createTempLedger(t, coffeeLine+"\n")
	out := captureStdout(t)
	never := "never"
	old := colorMode
	colorMode = &never
	defer func() { colorMode = old }()

	if status := execute(t, &summaryCmd{}, "-target", "0"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if !strings.Contains(out.String(), "Savings") {
		t.Errorf("summary with a zero target has no savings section:\n%s", out.String())
	}
}

func TestImport(t *testing.T) {
	name := createTempLedger(t, coffeeLine+"\n")
	out := captureStdout(t)

	source := filepath.Join(t.TempDir(), "export.json")
	doc := `{"transactions": [
		{"label": "Rent", "value": "1200", "kind": "Housing", "booked": "2025-01-01"},
		{"label": "Cinema", "value": 15, "booked": "2025-02-14"}
	]}`
	if err := os.WriteFile(source, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	status := execute(t, &importCmd{},
		"-path", "$.transactions[*]", "-desc", "label", "-amount", "value",
		"-category", "kind", "-date", "booked", "-default-category", "Leisure",
		source)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	want := coffeeLine + "\n" + rentLine + "\n" + cinemaLine + "\n"
	if got := readFile(t, name); got != want {
		t.Errorf("ledger mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
	if got, want := out.String(), "Imported 2 expenses into "+name+"\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestImport_Errors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`[{"description": "Lunch", "amount": "a lot"}]`), 0644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name string
		args []string
		want subcommands.ExitStatus
	}{
		{name: "no argument", want: subcommands.ExitUsageError},
		{name: "missing file", args: []string{filepath.Join(dir, "missing.json")}, want: subcommands.ExitFailure},
		{name: "invalid amount", args: []string{invalid}, want: subcommands.ExitFailure},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name := createTempLedger(t, "")
			captureStdout(t)
			if status := execute(t, &importCmd{}, tc.args...); status != tc.want {
				t.Errorf("status = %v, want %v", status, tc.want)
			}
			if _, err := os.Stat(name); !os.IsNotExist(err) {
				t.Errorf("ledger file should not have been created: %v", err)
			}
		})
	}
}

// rowDescriptions returns the description column of the rows of a table.
func rowDescriptions(table string) []string {
	var descriptions []string
	for _, line := range strings.Split(table, "\n") {
		if !strings.HasPrefix(line, "| ") || strings.HasPrefix(line, "| Description") {
			continue
		}
		cells := strings.Split(line, "|")
		descriptions = append(descriptions, strings.TrimSpace(cells[1]))
	}
	return descriptions
}
