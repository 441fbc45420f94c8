package timescale

import (
	"github.com/orbitalkit/labpoint/pkg/civiltime"
	"github.com/orbitalkit/labpoint/pkg/julian"
)

// jdMJD0 is the Julian Date of MJD 0.
const jdMJD0 = 2400000.5

type leapEntry struct {
	Total float64 // cumulative TAI-UTC in seconds
	Mjd   float64 // first UTC day the total applies
}

// Cumulative TAI-UTC since the 1972 reform, newest first. Frozen
// table; no leap second has been scheduled since 2017 and none is
// announced.
var leapSeconds = []leapEntry{
	{37, 57754}, // 2017-01-01
	{36, 57204}, // 2015-07-01
	{35, 56109}, // 2012-07-01
	{34, 54832}, // 2009-01-01
	{33, 53736}, // 2006-01-01
	{32, 51179}, // 1999-01-01
	{31, 50630}, // 1997-07-01
	{30, 50083}, // 1996-01-01
	{29, 49534}, // 1994-07-01
	{28, 49169}, // 1993-07-01
	{27, 48804}, // 1992-07-01
	{26, 48257}, // 1991-01-01
	{25, 47892}, // 1990-01-01
	{24, 47161}, // 1988-01-01
	{23, 46247}, // 1985-07-01
	{22, 45516}, // 1983-07-01
	{21, 45151}, // 1982-07-01
	{20, 44786}, // 1981-07-01
	{19, 44239}, // 1980-01-01
	{18, 43874}, // 1979-01-01
	{17, 43509}, // 1978-01-01
	{16, 43144}, // 1977-01-01
	{15, 42778}, // 1976-01-01
	{14, 42413}, // 1975-01-01
	{13, 42048}, // 1974-01-01
	{12, 41683}, // 1973-01-01
	{11, 41499}, // 1972-07-01
	{10, 41317}, // 1972-01-01
}

// taiMinusUTC returns the cumulative leap second total for a UTC
// stamp. Dates before the 1972 reform get the first total; the rubber
// second era is out of range for this repository.
func taiMinusUTC(utc civiltime.Stamp) float64 {
	mjd := julian.Date(utc) - jdMJD0
	for _, entry := range leapSeconds {
		if mjd >= entry.Mjd {
			return entry.Total
		}
	}
	return leapSeconds[len(leapSeconds)-1].Total
}
