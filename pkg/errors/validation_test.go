package errors

import (
	"testing"
)

func TestCheckIndex(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		length   int
		want     int
		wantCode Code
	}{
		{"first", 0, 3, 0, ""},
		{"last", 2, 3, 2, ""},
		{"negative from end", -1, 3, 2, ""},
		{"equal to length", 3, 3, 0, ErrCodeOutOfBounds},
		{"past end", 7, 3, 0, ErrCodeOutOfBounds},
		{"too negative", -4, 3, 0, ErrCodeOutOfBounds},
		{"empty", 0, 0, 0, ErrCodeOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckIndex("Row", tt.index, tt.length)
			if code := GetCode(err); code != tt.wantCode {
				t.Fatalf("CheckIndex(%d, %d) code = %q, want %q", tt.index, tt.length, code, tt.wantCode)
			}
			if err == nil && got != tt.want {
				t.Errorf("CheckIndex(%d, %d) = %d, want %d", tt.index, tt.length, got, tt.want)
			}
		})
	}
}

func TestCheckSlice(t *testing.T) {
	tests := []struct {
		name        string
		start, stop int
		length      int
		supplied    int
		wantCode    Code
	}{
		{"exact", 0, 2, 3, 2, ""},
		{"empty slice", 1, 1, 3, 0, ""},
		{"whole", 0, 3, 3, 3, ""},
		{"stop past end", 1, 4, 3, 3, ErrCodeOutOfBounds},
		{"inverted", 2, 1, 3, 0, ErrCodeOutOfBounds},
		{"negative start", -1, 1, 3, 2, ErrCodeOutOfBounds},
		{"too few", 0, 2, 3, 1, ErrCodeShapeMismatch},
		{"too many", 0, 2, 3, 3, ErrCodeShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSlice("Column", tt.start, tt.stop, tt.length, tt.supplied)
			if code := GetCode(err); code != tt.wantCode {
				t.Errorf("CheckSlice() code = %q, want %q (err %v)", code, tt.wantCode, err)
			}
		})
	}
}
