package stats

import "testing"

func TestSparklineScalesToLevels(t *testing.T) {
	out := Sparkline([]float64{1, 2, 3})
	if out != "▁▅█" {
		t.Fatalf("unexpected sparkline: %q", out)
	}
}

func TestSparklineFlatSeries(t *testing.T) {
	out := Sparkline([]float64{2, 2, 2})
	if out != "▅▅▅" {
		t.Fatalf("expected mid-level run for flat series, got %q", out)
	}
}

func TestSparklineEmpty(t *testing.T) {
	if out := Sparkline(nil); out != "" {
		t.Fatalf("expected empty sparkline, got %q", out)
	}
}

func TestMovingAverageWindowOne(t *testing.T) {
	values := []float64{1, 2, 3}
	out := MovingAverage(values, 1)
	for i := range values {
		if out[i] != values[i] {
			t.Fatalf("expected copy for window 1, got %v", out)
		}
	}
}

func TestMovingAverageSmooths(t *testing.T) {
	out := MovingAverage([]float64{1, 2, 3, 4}, 2)
	want := []float64{1, 1.5, 2.5, 3.5}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("index %d: expected %f, got %f", i, want[i], out[i])
		}
	}
}

func TestResampleShrinks(t *testing.T) {
	out := Resample([]float64{1, 2, 3, 4, 5, 6}, 3)
	want := []float64{1.5, 3.5, 5.5}
	if len(out) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(out))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("bucket %d: expected %f, got %f", i, want[i], out[i])
		}
	}
}

func TestResampleKeepsShortSeries(t *testing.T) {
	values := []float64{1, 2}
	out := Resample(values, 5)
	if len(out) != 2 || out[0] != 1 || out[1] != 2 {
		t.Fatalf("expected unchanged series, got %v", out)
	}
	out[0] = 9
	if values[0] != 1 {
		t.Fatalf("expected a copy, source was mutated")
	}
}

func TestResampleZeroWidth(t *testing.T) {
	if out := Resample([]float64{1, 2}, 0); out != nil {
		t.Fatalf("expected nil for zero width, got %v", out)
	}
}
