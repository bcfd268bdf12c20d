package ops

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

func newProgressWriter(nTrackers int) progress.Writer {
	pw := progress.NewWriter()
	pw.SetAutoStop(true)
	pw.SetMessageLength(24)
	pw.SetNumTrackersExpected(nTrackers)
	pw.SetSortBy(progress.SortByPercentDsc)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerLength(25)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsExample
	pw.Style().Options.PercentFormat = "%4.1f%%"
	pw.Style().Visibility.ETA = true
	pw.Style().Visibility.Percentage = true
	pw.Style().Visibility.Time = true
	return pw
}

// Block until the renderer has drawn the final state.
func waitRender(pw progress.Writer) {
	for pw.IsRenderInProgress() {
		time.Sleep(time.Millisecond * 100)
	}
}

func ratio(num, den int64) string {
	if den == 0 {
		return "n/a"
	}
	return fmtPercent(float64(num) / float64(den) * 100.0)
}
