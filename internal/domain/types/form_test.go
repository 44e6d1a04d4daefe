package types_test

import (
	"encoding/json"
	"testing"

	"sevanear/internal/domain/types"
)

func TestParseFormNumber(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantNaN bool
	}{
		{"2", 2, false},
		{" 11.2588 ", 11.2588, false},
		{"-75.78", -75.78, false},
		{"", 0, true},
		{"abc", 0, true},
		{"12abc", 0, true},
	}
	for _, c := range cases {
		got := types.ParseFormNumber(c.in)
		if c.wantNaN {
			if !got.IsNaN() {
				t.Fatalf("ParseFormNumber(%q) = %v, want NaN", c.in, got)
			}
			continue
		}
		if float64(got) != c.want {
			t.Fatalf("ParseFormNumber(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormNumber_JSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(types.ParseFormNumber("bad"))
	if err != nil {
		t.Fatalf("marshal NaN: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("NaN encoded as %s, want null", b)
	}

	var n types.FormNumber
	if err := json.Unmarshal([]byte("null"), &n); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !n.IsNaN() {
		t.Fatalf("null decoded to %v, want NaN", n)
	}
	if err := json.Unmarshal([]byte("3.5"), &n); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if float64(n) != 3.5 {
		t.Fatalf("decoded %v", n)
	}
}
