package version

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input     string
		expected  Version
		expectErr error
	}{
		{"1", Version{Major: 1, Precision: 1}, nil},
		{"1.28", Version{Major: 1, Minor: 28, Precision: 2}, nil},
		{"1.28.4", Version{Major: 1, Minor: 28, Patch: 4, Precision: 3}, nil},
		{"v1.28.4", Version{Major: 1, Minor: 28, Patch: 4, Precision: 3}, nil},
		{"1.28.4-eks-3025e55", Version{Major: 1, Minor: 28, Patch: 4, Precision: 3, Extras: "-eks-3025e55"}, nil},
		{"1.28.0-gke.1337000", Version{Major: 1, Minor: 28, Patch: 0, Precision: 3, Extras: "-gke.1337000"}, nil},
		{"", Version{}, ErrEmptyVersion},
		{"1.2.3.4", Version{}, ErrTooManyComponents},
		{"1.x.3", Version{}, ErrNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected error %v, got %v", tt.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestEqualsOrNewer(t *testing.T) {
	tests := []struct {
		name     string
		v        string
		other    string
		expected bool
	}{
		{"equal", "1.28.4", "1.28.4", true},
		{"newer patch", "1.28.5", "1.28.4", true},
		{"older patch", "1.28.3", "1.28.4", false},
		{"newer minor", "1.29", "1.28.9", true},
		{"minor precision matches any patch", "1.28", "1.28.9", true},
		{"older major", "1.18.20", "1.19.0", false},
		{"ingress v1 cutoff", "1.19.0", "1.19.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := MustParseVersion(tt.v)
			other := MustParseVersion(tt.other)
			if got := v.EqualsOrNewer(other); got != tt.expected {
				t.Errorf("%s.EqualsOrNewer(%s) = %v, expected %v", tt.v, tt.other, got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	if s := MustParseVersion("1.28").String(); s != "1.28" {
		t.Errorf("expected 1.28, got %s", s)
	}
	if s := MustParseVersion("1.28.4-eks-3025e55").String(); s != "1.28.4" {
		t.Errorf("expected extras to be excluded, got %s", s)
	}
}

func TestIsValid(t *testing.T) {
	if !MustParseVersion("1.28.4").IsValid() {
		t.Error("expected parsed version to be valid")
	}
	if (Version{Precision: 4}).IsValid() {
		t.Error("expected invalid precision to be rejected")
	}
}
