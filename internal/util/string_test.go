package util

import "testing"

func TestMemMegabytes(t *testing.T) {
	testCases := []struct {
		name   string
		amount int64
		unit   string
		want   int64
		wantOk bool
	}{
		{"one megabyte of bytes", 1048576, "b", 1, true},
		{"bytes truncate towards zero", 1048575, "b", 0, true},
		{"kilobytes", 2048, "kb", 2, true},
		{"megabytes", 1, "mb", 1, true},
		{"gigabytes", 1, "gb", 1024, true},
		{"terabytes", 1, "tb", 1048576, true},
		{"uppercase unit", 10, "GB", 10240, true},
		{"mixed case unit", 1, "Mb", 1, true},
		{"unrecognized unit", 42, "xyz", 0, false},
		{"word size unit unsupported", 8, "kw", 0, false},
		{"empty unit", 8, "", 0, false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MemMegabytes(tc.amount, tc.unit)
			if ok != tc.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOk)
			}
			if got != tc.want {
				t.Fatalf("MemMegabytes(%d, %q) = %d, want %d",
					tc.amount, tc.unit, got, tc.want)
			}
		})
	}
}
