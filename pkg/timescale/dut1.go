package timescale

import (
	"time"

	"github.com/orbitalkit/labpoint/pkg/civiltime"
	"github.com/orbitalkit/labpoint/pkg/spline"
)

// Bundled UT1-UTC samples in seconds, after IERS Bulletin A. DUT1
// drifts a few milliseconds per day, so quarterly knots interpolated
// smoothly keep the error well under the second-level accuracy this
// repository needs. Refresh the table when extending the covered
// range.
var dut1Samples = []spline.Sample{
	{Time: date(2024, 1, 1), Value: 0.0161},
	{Time: date(2024, 4, 1), Value: 0.0291},
	{Time: date(2024, 7, 1), Value: 0.0415},
	{Time: date(2024, 10, 1), Value: 0.0345},
	{Time: date(2025, 1, 1), Value: 0.0483},
	{Time: date(2025, 4, 1), Value: 0.0570},
	{Time: date(2025, 7, 1), Value: 0.0601},
	{Time: date(2025, 10, 1), Value: 0.0655},
	{Time: date(2026, 1, 1), Value: 0.0712},
	{Time: date(2026, 4, 1), Value: 0.0768},
}

var dut1Spline = spline.CurvesBetween(dut1Samples)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dut1 returns UT1-UTC in seconds for a stamp on either scale; the
// two differ by far less than the table resolution. Instants outside
// the table clamp to the nearest edge value.
func dut1(ts civiltime.Stamp) float64 {
	t := toTime(ts)
	if !t.After(dut1Samples[0].Time) {
		return dut1Samples[0].Value
	}
	if last := dut1Samples[len(dut1Samples)-1]; !t.Before(last.Time) {
		return last.Value
	}
	return dut1Spline.Eval(t)
}
