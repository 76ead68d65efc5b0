package escape

import (
	"math/rand"
	"testing"
)

func TestTime(t *testing.T) {
	tcs := []struct {
		name        string
		c           complex128
		limit       int
		wantCount   int
		wantEscaped bool
	}{
		{name: "origin", c: 0, limit: DefaultLimit, wantEscaped: false},
		{name: "origin small limit", c: 0, limit: 1, wantEscaped: false},
		{name: "period two", c: complex(-1, 0), limit: DefaultLimit, wantEscaped: false},
		{name: "far point", c: complex(4, 0), limit: DefaultLimit, wantCount: 1, wantEscaped: true},
		{name: "far point limit one", c: complex(4, 0), limit: 1, wantEscaped: false},
		// 1 -> 2 -> 5
		{name: "one", c: complex(1, 0), limit: DefaultLimit, wantCount: 3, wantEscaped: true},
		{name: "zero limit", c: complex(4, 0), limit: 0, wantEscaped: false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			count, escaped := Time(tc.c, tc.limit)
			if escaped != tc.wantEscaped {
				t.Fatalf("Time(%v, %d) escaped = %t, want %t", tc.c, tc.limit, escaped, tc.wantEscaped)
			}
			if escaped && count != tc.wantCount {
				t.Errorf("Time(%v, %d) = %d, want %d", tc.c, tc.limit, count, tc.wantCount)
			}
		})
	}
}

func TestTime_CountBelowLimit(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		c := complex(r.Float64()*4-2.5, r.Float64()*3-1.5)
		limit := 1 + r.Intn(300)

		count, escaped := Time(c, limit)
		if escaped && (count < 0 || count >= limit) {
			t.Fatalf("Time(%v, %d) = %d, want count in [0, %d)", c, limit, count, limit)
		}
	}
}

func BenchmarkTime(b *testing.B) {
	c := complex(-0.7436, 0.1318)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Time(c, DefaultLimit)
	}
}
