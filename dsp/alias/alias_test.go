package alias

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-radiolab/internal/testutil"
)

func TestPeakKnownValues(t *testing.T) {
	tests := []struct {
		f0, fs, want float64
	}{
		{7, 10, 3},
		{3, 10, 3},
		{5, 10, 5},
		{10, 10, 0},
		{17, 10, 3},
		{7, 20, 7},
		{7, 5, 2},
		{-3, 10, 3},
		{-7, 10, 3},
		{1420.4, 1000, 420.4},
		{0, 10, 0},
	}
	for _, tc := range tests {
		got := Peak(tc.f0, tc.fs)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Peak(%g, %g)=%g want=%g", tc.f0, tc.fs, got, tc.want)
		}
	}
}

func TestPeakWithinFirstNyquistZone(t *testing.T) {
	f0s := testutil.DeterministicNoise(1, 1e6, 500)
	fss := testutil.DeterministicNoise(2, 1e4, 500)
	for i := range f0s {
		fs := math.Abs(fss[i]) + 1
		f0 := math.Abs(f0s[i])
		got := Peak(f0, fs)
		if got < 0 || got > fs/2 {
			t.Fatalf("Peak(%g, %g)=%g outside [0, %g]", f0, fs, got, fs/2)
		}
	}
}

func TestPeakZeroSamplingRatePropagatesNaN(t *testing.T) {
	if got := Peak(7, 0); !math.IsNaN(got) {
		t.Fatalf("Peak(7, 0)=%g want NaN", got)
	}
}

func TestFloorModSign(t *testing.T) {
	tests := []struct{ x, y, want float64 }{
		{7, 10, 7},
		{-3, 10, 7},
		{3, -10, -7},
		{-3, -10, -3},
		{20, 10, 0},
	}
	for _, tc := range tests {
		if got := floorMod(tc.x, tc.y); got != tc.want {
			t.Fatalf("floorMod(%g, %g)=%g want=%g", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestPeakElementwise(t *testing.T) {
	got, err := PeakElementwise([]float64{7, 3, 7}, []float64{10, 10, 5})
	if err != nil {
		t.Fatalf("PeakElementwise error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 3, 2}, 1e-12)

	got, err = PeakElementwise([]float64{7}, []float64{10, 20, 5})
	if err != nil {
		t.Fatalf("PeakElementwise broadcast f0 error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 7, 2}, 1e-12)

	got, err = PeakElementwise([]float64{3, 7, 12}, []float64{10})
	if err != nil {
		t.Fatalf("PeakElementwise broadcast fs error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 3, 2}, 1e-12)

	if _, err := PeakElementwise([]float64{1, 2}, []float64{1, 2, 3}); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestTheoryCurve(t *testing.T) {
	in := []float64{10, 20, 5}
	fs, fobs := TheoryCurve(7, in)

	testutil.RequireSliceNearlyEqual(t, fs, []float64{10, 20, 5}, 0)
	testutil.RequireSliceNearlyEqual(t, fobs, []float64{3, 7, 2}, 1e-12)

	fs[0] = 99
	if in[0] != 10 {
		t.Fatalf("TheoryCurve returned a view of its input")
	}

	fs, fobs = TheoryCurve(7, nil)
	if fs == nil || len(fs) != 0 || len(fobs) != 0 {
		t.Fatalf("empty sweep: fs=%v fobs=%v", fs, fobs)
	}
}

func TestLogspaceFs(t *testing.T) {
	got, err := LogspaceFs(1000, 10, 3)
	if err != nil {
		t.Fatalf("LogspaceFs error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len=%d want=3", len(got))
	}
	if got[0] != 1000 || got[2] != 10 {
		t.Fatalf("endpoints=%v,%v want=1000,10", got[0], got[2])
	}
	if math.Abs(got[1]-100) > 1e-9 {
		t.Fatalf("midpoint=%g want=100", got[1])
	}
}

func TestLogspaceFsDirectionAndSpacing(t *testing.T) {
	down, err := LogspaceFs(2.4e6, 1e3, DefaultPoints)
	if err != nil {
		t.Fatalf("LogspaceFs error: %v", err)
	}
	if len(down) != DefaultPoints {
		t.Fatalf("len=%d want=%d", len(down), DefaultPoints)
	}
	ratio := down[1] / down[0]
	for i := 1; i < len(down); i++ {
		if !(down[i] < down[i-1]) || down[i] <= 0 {
			t.Fatalf("not strictly decreasing and positive at %d: %g, %g", i, down[i-1], down[i])
		}
		if r := down[i] / down[i-1]; math.Abs(r-ratio) > 1e-9 {
			t.Fatalf("ratio at %d=%g want=%g", i, r, ratio)
		}
	}

	up, _ := LogspaceFs(1, 100, 5)
	testutil.RequireSliceNearlyEqual(t, up, []float64{1, math.Sqrt(10), 10, math.Pow(10, 1.5), 100}, 1e-9)
}

func TestLogspaceFsSmallCounts(t *testing.T) {
	got, err := LogspaceFs(1000, 10, 0)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("npts=0: got=%v err=%v", got, err)
	}
	got, err = LogspaceFs(1000, 10, 1)
	if err != nil || len(got) != 1 || got[0] != 1000 {
		t.Fatalf("npts=1: got=%v err=%v", got, err)
	}
}

func TestLogspaceFsErrors(t *testing.T) {
	tests := []struct {
		name         string
		fsMax, fsMin float64
		npts         int
		want         error
	}{
		{"zero max", 0, 10, 5, ErrNonPositiveFrequency},
		{"negative min", 100, -1, 5, ErrNonPositiveFrequency},
		{"nan", math.NaN(), 1, 5, ErrNonPositiveFrequency},
		{"negative points", 100, 1, -1, ErrPoints},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LogspaceFs(tc.fsMax, tc.fsMin, tc.npts); !errors.Is(err, tc.want) {
				t.Fatalf("err=%v want=%v", err, tc.want)
			}
		})
	}
}
