package utils

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2023, 6, 5, 14, 30, 45, 123, time.UTC)
	got := StartOfDay(in)
	want := time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay returned %v, want %v", got, want)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2023-06-05")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	want := time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate returned %v, want %v", got, want)
	}

	if _, err := ParseDate("05/06/2023"); err == nil {
		t.Error("expected error for non yyyy-MM-dd input")
	}
}
