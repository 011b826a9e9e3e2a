package buffer

import "testing"

func TestComparePos(t *testing.T) {
	t.Run("row", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 0, Col: 0}, Pos{Row: 1, Col: 0}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
		if got := ComparePos(Pos{Row: 2, Col: 0}, Pos{Row: 1, Col: 999}); got <= 0 {
			t.Fatalf("expected > 0, got %d", got)
		}
	})

	t.Run("col", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 1, Col: 0}, Pos{Row: 1, Col: 1}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
		if got := ComparePos(Pos{Row: 1, Col: 2}, Pos{Row: 1, Col: 1}); got <= 0 {
			t.Fatalf("expected > 0, got %d", got)
		}
	})

	t.Run("equal", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 3, Col: 4}, Pos{Row: 3, Col: 4}); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
		if (Pos{Row: 3, Col: 4}).Less(Pos{Row: 3, Col: 4}) {
			t.Fatalf("equal positions must not be Less")
		}
	})
}

func TestClampPos(t *testing.T) {
	lineLens := []int{1, 0, 3}
	ll := func(row int) int { return lineLens[row] }

	cases := []struct {
		in   Pos
		want Pos
	}{
		{in: Pos{Row: -1, Col: -1}, want: Pos{Row: 0, Col: 0}},
		{in: Pos{Row: 999, Col: 999}, want: Pos{Row: 2, Col: 3}},
		{in: Pos{Row: 1, Col: 5}, want: Pos{Row: 1, Col: 0}},
		{in: Pos{Row: 0, Col: 1}, want: Pos{Row: 0, Col: 1}},
	}

	for _, tc := range cases {
		if got := ClampPos(tc.in, len(lineLens), ll); got != tc.want {
			t.Fatalf("ClampPos(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSpan_NormalizedAndLen(t *testing.T) {
	s := Span{Start: 4, End: 1}
	if got := s.Len(); got != -3 {
		t.Fatalf("len=%d, want -3", got)
	}
	if got, want := s.Normalized(), (Span{Start: 1, End: 4}); got != want {
		t.Fatalf("normalized=%v, want %v", got, want)
	}
	if !(Span{Start: 2, End: 2}).IsEmpty() {
		t.Fatalf("expected empty span")
	}
}
