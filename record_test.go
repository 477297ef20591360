package expense

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/expense/date"
)

func TestNewRecord_StampsToday(t *testing.T) {
	r := NewRecord("Coffee", D("4.5"), "Food")
	if got, want := r.Date(), date.Today(); got != want {
		t.Errorf("NewRecord().Date() = %v, want %v", got, want)
	}
	if r.Description() != "Coffee" || r.Category() != "Food" || !r.Amount().Equal(D("4.5")) {
		t.Errorf("NewRecord() = %v", r)
	}
}

func TestRecord_Encode(t *testing.T) {
	testCases := []struct {
		name string
		rec  Record
		want string
	}{
		{
			name: "fractional amount",
			rec:  rec("2025-01-10", "Coffee", 4.5, "Food"),
			want: "description : Coffee      |      amount : 4.5      |      date : 2025-01-10      |      category : Food",
		},
		{
			name: "integral amount",
			rec:  rec("2025-01-31", "Rent", 1200, "Housing"),
			want: "description : Rent      |      amount : 1200      |      date : 2025-01-31      |      category : Housing",
		},
		{
			name: "negative amount and empty category",
			rec:  rec("2025-02-01", "Refund", -5, ""),
			want: "description : Refund      |      amount : -5      |      date : 2025-02-01      |      category : ",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rec.Encode(); got != tc.want {
				t.Errorf("Encode() =\n%q\nwant\n%q", got, tc.want)
			}
		})
	}
}

func TestDecodeRecord(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		want    Record
		wantErr bool
	}{
		{
			name: "canonical",
			line: "description : Coffee      |      amount : 4.5      |      date : 2025-01-10      |      category : Food",
			want: rec("2025-01-10", "Coffee", 4.5, "Food"),
		},
		{
			name: "compact",
			line: "description:Rent|amount:1200|date:2025-01-31|category:Housing",
			want: rec("2025-01-31", "Rent", 1200, "Housing"),
		},
		{
			name: "colon in value",
			line: "description : Train 08:15 | amount : 12.25 | date : 2025-01-10 | category : Travel",
			want: rec("2025-01-10", "Train 08:15", 12.25, "Travel"),
		},
		{
			name: "extra segments are ignored",
			line: "description : Coffee | amount : 4.5 | date : 2025-01-10 | category : Food | note : ignored",
			want: rec("2025-01-10", "Coffee", 4.5, "Food"),
		},
		{
			name:    "too few segments",
			line:    "description : Coffee | amount : 4.5 | date : 2025-01-10",
			wantErr: true,
		},
		{
			name:    "segment without colon",
			line:    "description : Coffee | 4.5 | date : 2025-01-10 | category : Food",
			wantErr: true,
		},
		{
			name:    "invalid amount",
			line:    "description : Coffee | amount : four | date : 2025-01-10 | category : Food",
			wantErr: true,
		},
		{
			name:    "invalid date",
			line:    "description : Coffee | amount : 4.5 | date : 10/01/2025 | category : Food",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeRecord(tc.line, KeepDate)
			if tc.wantErr {
				var ferr *FormatError
				if !errors.As(err, &ferr) {
					t.Fatalf("DecodeRecord() error = %v, want a *FormatError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeRecord() unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("DecodeRecord() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDecodeRecord_Restamp(t *testing.T) {
	// The legacy reader discarded the persisted date, even an invalid one.
	line := "description : Coffee | amount : 4.5 | date : not-a-date | category : Food"
	got, err := DecodeRecord(line, Restamp)
	if err != nil {
		t.Fatalf("DecodeRecord(Restamp) unexpected error: %v", err)
	}
	if got.Date() != date.Today() {
		t.Errorf("DecodeRecord(Restamp).Date() = %v, want today %v", got.Date(), date.Today())
	}
}

func TestRecord_RoundTrip(t *testing.T) {
	records := []Record{
		rec("2025-01-10", "Coffee", 4.5, "Food"),
		rec("2024-02-29", "Leap day lunch", 17.125, "Food"),
		rec("2025-03-01", "Refund", -5, "Misc"),
		rec("2025-03-02", "  padded  ", 0, "  spaces  "),
	}
	for _, r := range records {
		got, err := DecodeRecord(r.Encode(), KeepDate)
		if err != nil {
			t.Fatalf("DecodeRecord(%q): %v", r.Encode(), err)
		}
		// surrounding spaces are not significant in the format.
		if got.Description() != strings.TrimSpace(r.Description()) || got.Category() != strings.TrimSpace(r.Category()) ||
			!got.Amount().Equal(r.Amount()) || got.Date() != r.Date() {
			t.Errorf("round trip of %v gave %v", r, got)
		}
	}
}

func TestOrderings(t *testing.T) {
	a := rec("2025-01-10", "a", 10, "")
	b := rec("2025-01-11", "b", 5, "")
	if ByDate(a, b) >= 0 || ByDate(b, a) <= 0 || ByDate(a, a) != 0 {
		t.Errorf("ByDate is inconsistent")
	}
	if ByAmount(b, a) >= 0 || ByAmount(a, b) <= 0 || ByAmount(a, a) != 0 {
		t.Errorf("ByAmount is inconsistent")
	}
}
