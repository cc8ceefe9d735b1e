package bestresponse

import (
	"testing"

	"github.com/timpalpant/bestresponse/matrixgame"
)

func TestVerify(t *testing.T) {
	payoffs := prisonersDilemma()
	table, err := Build(3, 2, payoffs)
	if err != nil {
		t.Fatal(err)
	}

	if err := Verify(table, payoffs); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestVerify_DetectsSuboptimalEntry(t *testing.T) {
	// (1, 1) -> 0 is wrong: defecting pays -6 against -10.
	table, err := NewTable(2, 2, []int{0, 1, 1, 0})
	if err != nil {
		t.Fatal(err)
	}

	if err := Verify(table, prisonersDilemma()); err == nil {
		t.Error("expected error for suboptimal entry")
	}
}

func TestVerify_DetectsWrongTieBreak(t *testing.T) {
	payoffs := matrixgame.NewMatrix(2)
	table, err := NewTable(1, 2, []int{1, 1})
	if err != nil {
		t.Fatal(err)
	}

	if err := Verify(table, payoffs); err == nil {
		t.Error("expected error when a tie is not broken towards the lowest index")
	}
}

func TestTableAccessors(t *testing.T) {
	table, err := Build(2, 2, prisonersDilemma())
	if err != nil {
		t.Fatal(err)
	}

	if table.NumOpponents() != 2 || table.NumStrategies() != 2 {
		t.Errorf("unexpected dimensions: %v", table)
	}

	profile, best, err := table.At(2)
	if err != nil {
		t.Fatal(err)
	}
	if profile.String() != "(1, 0)" || best != 1 {
		t.Errorf("At(2): expected ((1, 0), 1), got (%v, %d)", profile, best)
	}

	if hist := table.Histogram(); hist[0] != 1 || hist[1] != 3 {
		t.Errorf("expected histogram [1 3], got %v", hist)
	}

	if _, err := table.Lookup(Profile{0}); err == nil {
		t.Error("expected error for profile of wrong length")
	}
	if _, err := table.Lookup(Profile{0, 2}); err == nil {
		t.Error("expected error for out of range strategy")
	}
}

func TestTableAt_OutOfRange(t *testing.T) {
	table, err := Build(2, 2, prisonersDilemma())
	if err != nil {
		t.Fatal(err)
	}

	for _, rank := range []int{-1, 4, 100} {
		if _, _, err := table.At(rank); err == nil {
			t.Errorf("At(%d): expected error", rank)
		}
	}
}

func TestTableEqual_Nil(t *testing.T) {
	table, err := Build(1, 2, prisonersDilemma())
	if err != nil {
		t.Fatal(err)
	}

	var missing *Table
	if table.Equal(nil) {
		t.Error("table equals nil")
	}
	if missing.Equal(table) {
		t.Error("nil equals table")
	}
	if !missing.Equal(nil) {
		t.Error("nil does not equal nil")
	}
}
