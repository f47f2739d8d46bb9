package keypath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"a", []string{"a"}},
		{"a.b", []string{"a", "b"}},
		{"skills.archery.name", []string{"skills", "archery", "name"}},
		{"x.y.z.w", []string{"x", "y", "z", "w"}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := Split(tt.key)
			if err != nil {
				t.Fatalf("Split(%q) error: %v", tt.key, err)
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.key, d)
			}
		})
	}
}

func TestSplitInvalid(t *testing.T) {
	for _, key := range []string{"", ".", "a.", ".a", "a..b"} {
		t.Run(key, func(t *testing.T) {
			if _, err := Split(key); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Split(%q) = %v, want ErrInvalidKey", key, err)
			}
		})
	}
}

func TestJoinRoundTrip(t *testing.T) {
	for _, key := range []string{"a", "a.b", "events.harvest.title"} {
		segs, err := Split(key)
		if err != nil {
			t.Fatalf("Split(%q) error: %v", key, err)
		}
		if got := Join(segs); got != key {
			t.Errorf("Join(Split(%q)) = %q", key, got)
		}
	}
}

func TestChild(t *testing.T) {
	if got := Child("", "a"); got != "a" {
		t.Errorf("Child(\"\", a) = %q", got)
	}
	if got := Child("a.b", "c"); got != "a.b.c" {
		t.Errorf("Child(a.b, c) = %q", got)
	}
}
