package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		min     float64
		max     float64
		want    float64
		wantErr bool
	}{
		{"valid latitude", "18.4861\n", -90, 90, 18.4861, false},
		{"valid negative longitude", "-69.9312\n", -180, 180, -69.9312, false},
		{"not a number", "abc\n", -90, 90, 0, true},
		{"out of range", "91\n", -90, 90, 0, true},
		{"nan rejected", "NaN\n", -90, 90, 0, true},
		{"inf rejected", "+Inf\n", -180, 180, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetCoordinate(rdr(tt.input), "Coord", tt.min, tt.max, &out)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %g", got)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("got %g, err=%v, want %g", got, err, tt.want)
			}
		})
	}
}
