package main

import (
	"errors"
	"strconv"
	"testing"

	"github.com/san-kum/mechkit/internal/numfmt"
	"github.com/san-kum/mechkit/internal/vector"
	"golang.org/x/text/language"
)

func TestEvalVec(t *testing.T) {
	tests := []struct {
		op   string
		args []string
		want string
	}{
		{"add", []string{"<1, 2, 3>", "<4, 5, 6>"}, "<5, 7, 9>"},
		{"sub", []string{"1,2,3", "(1, 1, 1)"}, "<0, 1, 2>"},
		{"mul", []string{"<1, 2, 3>", "2"}, "<2, 4, 6>"},
		{"div", []string{"<1, 2, 3>", "0"}, "<Infinity, Infinity, Infinity>"},
		{"neg", []string{"<1, 2, -3>"}, "<-1, -2, 3>"},
		{"dot", []string{"<1, 2, 3>", "<4, 5, 6>"}, "32"},
		{"cross", []string{"<1, 0, 0>", "<0, 1, 0>"}, "<0, 0, 1>"},
		{"len", []string{"<3, 4, 0>"}, "5"},
		{"len2", []string{"<3, 4, 0>"}, "25"},
		{"dist", []string{"<0, 0, 0>", "<0, 3, 4>"}, "5"},
		{"dist2", []string{"<1, 1, 1>", "<2, 2, 2>"}, "3"},
		{"norm", []string{"<0, 0, 2>"}, "<0, 0, 1>"},
		{"norm", []string{"<0, 0, 0>"}, "<NaN, NaN, NaN>"},
		{"cmp", []string{"<1, 0, 0>", "<0, 1, 0>"}, "0"},
		{"cmp", []string{"<2, 0, 0>", "<0, 1, 0>"}, "1"},
		{"eq", []string{"<0, 0, 0>", "<-0, 0, 0>"}, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			got, err := evalVec(tt.op, tt.args, numfmt.Invariant)
			if err != nil {
				t.Fatalf("evalVec(%s) error: %v", tt.op, err)
			}
			if got != tt.want {
				t.Errorf("evalVec(%s, %v) = %q, want %q", tt.op, tt.args, got, tt.want)
			}
		})
	}
}

func TestEvalVec_Locale(t *testing.T) {
	f := numfmt.MustParse("F1", language.German)
	got, err := evalVec("mul", []string{"<1, 2, 3>", "0.5"}, f)
	if err != nil {
		t.Fatal(err)
	}
	if want := "<0,5. 1,0. 1,5>"; got != want {
		t.Errorf("evalVec() = %q, want %q", got, want)
	}
}

func TestEvalVec_Errors(t *testing.T) {
	if _, err := evalVec("pow", []string{"<1, 2, 3>"}, numfmt.Invariant); err == nil {
		t.Error("expected error for unknown op")
	}
	if _, err := evalVec("add", []string{"<1, 2, 3>"}, numfmt.Invariant); err == nil {
		t.Error("expected arity error")
	}
	if _, err := evalVec("len", []string{"<1, 2>"}, numfmt.Invariant); !errors.Is(err, vector.ErrSyntax) {
		t.Errorf("expected ErrSyntax, got %v", err)
	}
	if _, err := evalVec("mul", []string{"<1, 2, 3>", "x"}, numfmt.Invariant); !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("expected strconv.ErrSyntax, got %v", err)
	}
}
