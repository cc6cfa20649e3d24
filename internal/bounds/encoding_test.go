package bounds

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestRange_JSON(t *testing.T) {
	r := NewRange(Exclude[uint](1), Include[uint](3))
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal unexpected error: %v", err)
	}
	want := `{"start":{"Exclude":1},"end":{"Include":3}}`
	if string(data) != want {
		t.Fatalf("Marshal = %s, want %s", data, want)
	}

	var back Range[uint]
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal unexpected error: %v", err)
	}
	if diff := cmp.Diff(r, back); diff != "" {
		t.Fatalf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRange_JSON_Notation(t *testing.T) {
	var r Range[uint]
	if err := json.Unmarshal([]byte(`"[2..5)"`), &r); err != nil {
		t.Fatalf("Unmarshal unexpected error: %v", err)
	}
	if diff := cmp.Diff(NewHalfOpenRange[uint](2, 5), r); diff != "" {
		t.Fatalf("notation decode mismatch (-want +got):\n%s", diff)
	}

	var signed Range[int]
	err := json.Unmarshal([]byte(`"[2..5)"`), &signed)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for signed notation, got %v", err)
	}
}

func TestBound_JSON_Errors(t *testing.T) {
	cases := []string{
		`{}`,
		`{"Include":1,"Exclude":2}`,
		`{"Open":1}`,
	}
	for _, in := range cases {
		var b Bound[uint]
		if err := json.Unmarshal([]byte(in), &b); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("Unmarshal(%s) error = %v, want ErrInvalidRange", in, err)
		}
	}
}

func TestRange_YAML(t *testing.T) {
	structural := "start:\n  Include: 1\nend:\n  Exclude: 4\n"
	var r Range[uint]
	if err := yaml.Unmarshal([]byte(structural), &r); err != nil {
		t.Fatalf("Unmarshal unexpected error: %v", err)
	}
	if diff := cmp.Diff(NewHalfOpenRange[uint](1, 4), r); diff != "" {
		t.Fatalf("structural decode mismatch (-want +got):\n%s", diff)
	}

	out, err := yaml.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal unexpected error: %v", err)
	}
	wantOut := "start:\n    Include: 1\nend:\n    Exclude: 4\n"
	if string(out) != wantOut {
		t.Fatalf("Marshal = %q, want %q", out, wantOut)
	}

	var notated Range[uint]
	if err := yaml.Unmarshal([]byte(`"(0..63]"`), &notated); err != nil {
		t.Fatalf("Unmarshal unexpected error: %v", err)
	}
	if diff := cmp.Diff(NewRange(Exclude[uint](0), Include[uint](63)), notated); diff != "" {
		t.Fatalf("notation decode mismatch (-want +got):\n%s", diff)
	}
}
