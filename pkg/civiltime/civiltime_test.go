package civiltime

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	table := []struct {
		input string
		want  Stamp
	}{{
		input: "2025-08-17T12:00:00",
		want:  Stamp{2025, 8, 17, 12, 0, 0},
	}, {
		input: "2025-08-17T12:00:00Z",
		want:  Stamp{2025, 8, 17, 12, 0, 0},
	}, {
		input: "2025-08-17 23:59:59",
		want:  Stamp{2025, 8, 17, 23, 59, 59},
	}, {
		input: "2000-01-01T12:00:00.500000",
		want:  Stamp{2000, 1, 1, 12, 0, 0.5},
	}, {
		input: "1999-12-31T00:00:01.25Z",
		want:  Stamp{1999, 12, 31, 0, 0, 1.25},
	}, {
		input: "  2025-02-28T06:30:15.125  ",
		want:  Stamp{2025, 2, 28, 6, 30, 15.125},
	}}

	for _, test := range table {
		t.Run(test.input, func(t *testing.T) {
			got, err := Parse(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("incorrect parse (-want,+got): %s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"not a time",
		"2025-08-17",          // date only
		"12:00:00",            // time only
		"2025-13-01T00:00:00", // no 13th month
		"2025-08-17T24:00:00", // hour out of range
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) err = %v, want ErrParse", input, err)
			}
		})
	}
}

func TestDayFraction(t *testing.T) {
	table := []struct {
		name string
		in   Stamp
		want float64
	}{
		{"midnight", Stamp{2025, 8, 17, 0, 0, 0}, 0},
		{"noon", Stamp{2025, 8, 17, 12, 0, 0}, 0.5},
		{"six am", Stamp{2025, 8, 17, 6, 0, 0}, 0.25},
		{"one minute", Stamp{2025, 8, 17, 0, 1, 0}, 1.0 / 1440.0},
		{"one second", Stamp{2025, 8, 17, 0, 0, 1}, 1.0 / 86400.0},
		{"last microsecond", Stamp{2025, 8, 17, 23, 59, 59.999999}, (86399.999999) / 86400.0},
	}
	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			got := test.in.DayFraction()
			if math.Abs(got-test.want) > 1e-15 {
				t.Errorf("DayFraction() = %v, want %v", got, test.want)
			}
			if got < 0 || got >= 1 {
				t.Errorf("DayFraction() = %v outside [0, 1)", got)
			}
		})
	}
}

func ExampleParse() {
	ts, _ := Parse("2025-08-17T12:00:00Z")
	fmt.Println(ts)
	withFrac, _ := Parse("2000-01-01 18:30:45.000125")
	fmt.Println(withFrac)
	// Output:
	// 2025-08-17T12:00:00
	// 2000-01-01T18:30:45.000125
}
