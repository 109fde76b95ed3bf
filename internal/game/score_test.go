package game

import (
	"reflect"
	"testing"

	"wordle_backend/internal/domain"
)

const (
	ok = domain.LetterCorrect
	wp = domain.LetterWrongPosition
	no = domain.LetterWrong
)

func TestScore(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		guess  string
		want   []domain.LetterResult
	}{
		{"exact match", "crane", "crane", []domain.LetterResult{ok, ok, ok, ok, ok}},
		{"no letters shared", "crane", "moody", []domain.LetterResult{no, no, no, no, no}},
		{"mixed", "crane", "trace", []domain.LetterResult{no, ok, ok, wp, ok}},
		{"all present all misplaced", "angle", "glean", []domain.LetterResult{wp, wp, wp, wp, wp}},
		{"guess repeats a single answer letter", "crane", "radar", []domain.LetterResult{wp, wp, no, no, no}},
		{"double letter budget", "alloy", "lolly", []domain.LetterResult{wp, wp, ok, no, ok}},
		{"double in answer single in guess", "lolly", "alloy", []domain.LetterResult{no, wp, ok, wp, ok}},
		{"exact match consumes budget first", "abbey", "babes", []domain.LetterResult{wp, wp, ok, ok, no}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.answer, tc.guess)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Score(%s, %s) = %v; want %v", tc.answer, tc.guess, got, tc.want)
			}
		})
	}
}

// A letter must never collect more non-wrong marks than it occurs in the answer.
func TestScoreLetterBudget(t *testing.T) {
	answer := "alloy"
	guess := "lolly"

	got := Score(answer, guess)

	nonWrongL := 0
	for i := 0; i < len(guess); i++ {
		if guess[i] == 'l' && got[i] != no {
			nonWrongL++
		}
	}
	if nonWrongL != 2 {
		t.Fatalf("got %d non-wrong marks for 'l'; answer holds exactly 2", nonWrongL)
	}
}

func TestScoreDeterministic(t *testing.T) {
	first := Score("slate", "least")
	for i := 0; i < 100; i++ {
		if got := Score("slate", "least"); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: Score returned %v; first run returned %v", i, got, first)
		}
	}
}
