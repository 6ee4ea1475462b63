package utils

import (
	"strings"
	"testing"
	"time"
)

func TestComputeAge(t *testing.T) {
	today := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthdate string
		want      int
		wantOK    bool
	}{
		{"exact birthday", "2006-06-15", 18, true},
		{"one day short", "2006-06-16", 17, true},
		{"later month", "2006-07-01", 17, true},
		{"earlier month", "2006-05-31", 18, true},
		{"german format", "15.06.2006", 18, true},
		{"timestamp", "2006-06-16T00:00:00Z", 17, true},
		{"empty", "", 0, false},
		{"garbage", "soon", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeAge(tt.birthdate, today)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ComputeAge(%q)=%d,%v want %d,%v", tt.birthdate, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate(" 01.03.2008 ")
	if err != nil || got != "2008-03-01" {
		t.Errorf("NormalizeDate=%q,%v", got, err)
	}
	if _, err := NormalizeDate("31.02.2008"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestMakeID(t *testing.T) {
	a, b := MakeID(), MakeID()
	if a == b {
		t.Fatal("ids must differ")
	}
	if len(a) != 36 || strings.Count(a, "-") != 4 {
		t.Errorf("unexpected id format %q", a)
	}
}

func TestPhotoDataURI(t *testing.T) {
	uri := PhotoDataURI("image/png", []byte{0x89, 'P', 'N', 'G'})
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("uri=%q", uri)
	}
}
