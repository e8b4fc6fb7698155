package tess

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultOptions(t *testing.T) {
	if diff := cmp.Diff(FillOptions{Tolerance: 0.01, Rule: FillRuleNonZero}, DefaultFillOptions()); diff != "" {
		t.Errorf("DefaultFillOptions() mismatch (-want +got):\n%s", diff)
	}
	want := StrokeOptions{
		LineWidth:  1,
		Tolerance:  0.01,
		MiterLimit: 4,
		Join:       LineJoinMiter,
		StartCap:   LineCapButt,
		EndCap:     LineCapButt,
	}
	if diff := cmp.Diff(want, DefaultStrokeOptions()); diff != "" {
		t.Errorf("DefaultStrokeOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestStrokeOptions_With(t *testing.T) {
	base := DefaultStrokeOptions()
	got := base.WithLineWidth(3).WithJoin(LineJoinRound).WithCap(LineCapSquare).WithMiterLimit(10).WithTolerance(0.5)

	if got.LineWidth != 3 || got.Join != LineJoinRound || got.StartCap != LineCapSquare ||
		got.EndCap != LineCapSquare || got.MiterLimit != 10 || got.Tolerance != 0.5 {
		t.Errorf("With* chain = %+v", got)
	}
	if base != DefaultStrokeOptions() {
		t.Errorf("With* modified the receiver: %+v", base)
	}
}

func TestFunctionalOptions(t *testing.T) {
	f := DefaultFillOptions()
	for _, opt := range []FillOption{WithFillTolerance(0.2), WithFillRule(FillRuleEvenOdd)} {
		opt(&f)
	}
	if f.Tolerance != 0.2 || f.Rule != FillRuleEvenOdd {
		t.Errorf("fill options = %+v", f)
	}

	s := DefaultStrokeOptions()
	for _, opt := range []StrokeOption{
		WithStrokeTolerance(0.3),
		WithLineJoin(LineJoinBevel),
		WithLineCap(LineCapRound),
		WithMiterLimit(2),
	} {
		opt(&s)
	}
	if s.Tolerance != 0.3 || s.Join != LineJoinBevel || s.StartCap != LineCapRound ||
		s.EndCap != LineCapRound || s.MiterLimit != 2 {
		t.Errorf("stroke options = %+v", s)
	}
}

func TestOptions_Validate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"default fill", DefaultFillOptions().validate(), false},
		{"default stroke", DefaultStrokeOptions().validate(), false},
		{"negative tolerance", DefaultFillOptions().WithTolerance(-1).validate(), true},
		{"NaN tolerance", DefaultStrokeOptions().WithTolerance(nan).validate(), true},
		{"infinite tolerance", DefaultFillOptions().WithTolerance(inf).validate(), true},
		{"miter limit 1", DefaultStrokeOptions().WithMiterLimit(1).validate(), false},
		{"miter limit NaN", DefaultStrokeOptions().WithMiterLimit(nan).validate(), true},
		{"unknown rule", DefaultFillOptions().WithRule(-1).validate(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if (tt.err != nil) != tt.wantErr {
				t.Errorf("validate() = %v, wantErr %v", tt.err, tt.wantErr)
			}
			if tt.err != nil && !errors.Is(tt.err, ErrInvalidInput) {
				t.Errorf("validate() = %v, want ErrInvalidInput", tt.err)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		v    fmt.Stringer
		want string
	}{
		{FillRuleNonZero, "NonZero"},
		{FillRuleEvenOdd, "EvenOdd"},
		{FillRule(5), "Unknown"},
		{LineCapButt, "Butt"},
		{LineCapRound, "Round"},
		{LineCapSquare, "Square"},
		{LineCap(9), "Unknown"},
		{LineJoinMiter, "Miter"},
		{LineJoinRound, "Round"},
		{LineJoinBevel, "Bevel"},
		{LineJoin(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%T(%d).String() = %q, want %q", tt.v, tt.v, got, tt.want)
		}
	}
}
