package bestresponse

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestEnumerateProfiles(t *testing.T) {
	var got []Profile
	err := EnumerateProfiles(2, 3, func(p Profile) {
		got = append(got, p.Clone())
	})
	if err != nil {
		t.Fatal(err)
	}

	expected := []Profile{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected: %v, got: %v", expected, got)
	}
}

func TestEnumerateProfiles_Count(t *testing.T) {
	for _, tc := range []struct{ n, k int }{{1, 1}, {1, 5}, {3, 1}, {4, 3}, {6, 2}} {
		count := 0
		seen := make(map[string]bool)
		err := EnumerateProfiles(tc.n, tc.k, func(p Profile) {
			count++
			seen[p.String()] = true
		})
		if err != nil {
			t.Fatal(err)
		}

		expected, _ := NumProfiles(tc.n, tc.k)
		if count != expected || len(seen) != expected {
			t.Errorf("n = %d, k = %d: expected %d distinct profiles, got %d (%d distinct)",
				tc.n, tc.k, expected, count, len(seen))
		}
	}
}

func TestEnumerateProfiles_InvalidDomain(t *testing.T) {
	called := false
	for _, tc := range []struct{ n, k int }{{0, 2}, {2, 0}, {-1, 3}} {
		err := EnumerateProfiles(tc.n, tc.k, func(p Profile) { called = true })
		if errors.Cause(err) != ErrInvalidDomainSize {
			t.Errorf("n = %d, k = %d: expected ErrInvalidDomainSize, got %v", tc.n, tc.k, err)
		}
	}

	if called {
		t.Error("callback invoked for invalid domain")
	}
}

func TestNumProfiles_Overflow(t *testing.T) {
	if _, err := NumProfiles(64, 2); errors.Cause(err) != ErrInvalidDomainSize {
		t.Errorf("expected ErrInvalidDomainSize, got %v", err)
	}
}

func TestProfileRank(t *testing.T) {
	rank := 0
	err := EnumerateProfiles(3, 4, func(p Profile) {
		got, err := ProfileRank(p, 4)
		if err != nil {
			t.Fatal(err)
		}
		if got != rank {
			t.Errorf("profile %v: expected rank %d, got %d", p, rank, got)
		}

		decoded := NthProfile(rank, 4, make(Profile, 3))
		if !reflect.DeepEqual(decoded, p) {
			t.Errorf("rank %d: expected profile %v, got %v", rank, p, decoded)
		}
		rank++
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestProfileRank_OutOfRange(t *testing.T) {
	if _, err := ProfileRank(Profile{0, 3}, 3); err == nil {
		t.Error("expected error for out of range strategy")
	}
	if _, err := ProfileRank(Profile{-1}, 3); err == nil {
		t.Error("expected error for negative strategy")
	}
}

func TestParseProfile(t *testing.T) {
	for s, expected := range map[string]Profile{
		"(0, 1)":  {0, 1},
		"2,0,1":   {2, 0, 1},
		" ( 3 ) ": {3},
	} {
		got, err := ParseProfile(s)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", s, err)
			continue
		}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("%q: expected %v, got %v", s, expected, got)
		}
	}

	for _, s := range []string{"", "()", "(a, 1)", "1,,2"} {
		if _, err := ParseProfile(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}

func TestProfileString(t *testing.T) {
	if s := (Profile{0, 1, 2}).String(); s != "(0, 1, 2)" {
		t.Errorf("expected (0, 1, 2), got %s", s)
	}
}
