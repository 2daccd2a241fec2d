// Package stats renders end-of-session statistics.
package stats

import (
	"fmt"
	"io"
	"sort"
	"time"
)

const (
	sparkSmoothWindow = 4
	sparkLabel        = "CPM trend "
	minSparkWidth     = 10
)

// KeyStat aggregates results for one practice symbol.
type KeyStat struct {
	Key       string
	Hits      int
	Misses    int
	LatencyMs float64
}

// Summary captures one finished practice session.
type Summary struct {
	Correct  int
	Total    int
	Accuracy float64
	PerMin   float64
	Elapsed  time.Duration
	Samples  []float64
	Keys     []KeyStat
}

// SortKeyStats orders keys worst accuracy first, ties by key.
func SortKeyStats(keys []KeyStat) {
	sort.Slice(keys, func(i, j int) bool {
		accI := keyAccuracy(keys[i])
		accJ := keyAccuracy(keys[j])
		if accI == accJ {
			return keys[i].Key < keys[j].Key
		}
		return accI < accJ
	})
}

func keyAccuracy(k KeyStat) float64 {
	total := k.Hits + k.Misses
	if total == 0 {
		return 0
	}
	return float64(k.Hits) / float64(total)
}

// WriteSummary prints a report for a finished session.
func WriteSummary(w io.Writer, sum Summary) error {
	if sum.Total == 0 {
		_, err := fmt.Fprintln(w, "No keys typed.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Session summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Keys: %d/%d correct\n", sum.Correct, sum.Total); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Accuracy: %.2f%%\n", sum.Accuracy); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Speed: %.2f CPM\n", sum.PerMin); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Time: %.1fs\n", sum.Elapsed.Seconds()); err != nil {
		return err
	}
	if trend := renderTrend(w, sum.Samples); trend != "" {
		if _, err := fmt.Fprintln(w, trend); err != nil {
			return err
		}
	}
	if len(sum.Keys) > 0 {
		if _, err := fmt.Fprintln(w, ""); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "Per-key results"); err != nil {
			return err
		}
		for _, line := range keyTableLines(sum.Keys) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderTrend(w io.Writer, samples []float64) string {
	if len(samples) < 2 {
		return ""
	}
	width := TerminalWidth(w, terminalWidthBackup) - len(sparkLabel)
	if width < minSparkWidth {
		width = minSparkWidth
	}
	smoothed := MovingAverage(samples, sparkSmoothWindow)
	spark := Sparkline(Resample(smoothed, width))
	if UseColor(w) {
		spark = colorCyan + spark + colorReset
	}
	return sparkLabel + spark
}

func keyTableLines(keys []KeyStat) []string {
	sorted := append([]KeyStat(nil), keys...)
	SortKeyStats(sorted)

	cols := []column{
		{title: "Key"},
		{title: "Accuracy", right: true},
		{title: "Avg ms", right: true},
		{title: "Hit", right: true},
		{title: "Miss", right: true},
	}
	rows := make([][]string, 0, len(sorted))
	for _, k := range sorted {
		rows = append(rows, []string{
			k.Key,
			fmt.Sprintf("%.2f%%", keyAccuracy(k)*100),
			fmt.Sprintf("%.1f", k.LatencyMs),
			fmt.Sprintf("%d", k.Hits),
			fmt.Sprintf("%d", k.Misses),
		})
	}
	return formatColumns(cols, rows)
}
