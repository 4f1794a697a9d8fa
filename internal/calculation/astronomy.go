package calculation

import (
	"math"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/pkg/dateutil"
)

const (
	// J2000 is the Julian Day of 2000-01-01T12:00 TT.
	J2000 = 2451545.0
	// SynodicMonth is the mean length of a lunation in days.
	SynodicMonth = 29.530588861
	// TropicalYear is the mean tropical year in days.
	TropicalYear = 365.2422

	newMoonEpoch = 2451550.09766

	solarTermMaxIterations = 50
	solarTermTolerance     = 1e-7
	newMoonMaxIterations   = 8
)

// deltaTSegment is one Espenak-Meeus polynomial for TT-UT in seconds,
// valid for years before Until, evaluated at t = year - Origin.
type deltaTSegment struct {
	Until  float64
	Origin float64
	Coeffs []float64
}

var deltaTSegments = []deltaTSegment{
	{Until: 1860, Origin: 1800, Coeffs: []float64{13.72, -0.332447, 0.0068612, 0.0041116, -0.00037436, 0.0000121272, -0.0000001699, 0.000000000875}},
	{Until: 1900, Origin: 1860, Coeffs: []float64{7.62, 0.5737, -0.251754, 0.01680668, -0.0004473624, 1.0 / 233174}},
	{Until: 1920, Origin: 1900, Coeffs: []float64{-2.79, 1.494119, -0.0598939, 0.0061966, -0.000197}},
	{Until: 1941, Origin: 1920, Coeffs: []float64{21.20, 0.84493, -0.076100, 0.0020936}},
	{Until: 1961, Origin: 1950, Coeffs: []float64{29.07, 0.407, -1.0 / 233, 1.0 / 2547}},
	{Until: 1986, Origin: 1975, Coeffs: []float64{45.45, 1.067, -1.0 / 260, -1.0 / 718}},
	{Until: 2005, Origin: 2000, Coeffs: []float64{63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599}},
	{Until: 2050, Origin: 2000, Coeffs: []float64{62.92, 0.32217, 0.005589}},
}

// DeltaT returns TT-UT in seconds for a decimal year.
func DeltaT(year float64) float64 {
	for _, seg := range deltaTSegments {
		if year < seg.Until {
			return polynomial(year-seg.Origin, seg.Coeffs)
		}
	}
	u := (year - 1820) / 100
	if year < 2150 {
		return -20 + 32*u*u - 0.5628*(2150-year)
	}
	return -20 + 32*u*u
}

func polynomial(t float64, coeffs []float64) float64 {
	sum := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		sum = sum*t + coeffs[i]
	}
	return sum
}

func decimalYear(jd float64) float64 { return 2000 + (jd-J2000)/365.25 }

func toTT(jdUT float64) float64 { return jdUT + DeltaT(decimalYear(jdUT))/86400 }

func toUT(jdTT float64) float64 { return jdTT - DeltaT(decimalYear(jdTT))/86400 }

func rad(deg float64) float64 { return deg * math.Pi / 180 }

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// SolarLongitude returns the apparent geocentric longitude of the sun in
// degrees [0, 360) for a Julian Day in UT, including nutation and aberration.
func SolarLongitude(jdUT float64) float64 {
	T := (toTT(jdUT) - J2000) / 36525
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	M := rad(357.52911 + 35999.05029*T - 0.0001537*T*T)
	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(M) +
		(0.019993-0.000101*T)*math.Sin(2*M) +
		0.000289*math.Sin(3*M)
	omega := rad(125.04 - 1934.136*T)
	return normalizeDegrees(L0 + C - 0.00569 - 0.00478*math.Sin(omega))
}

// SolarTermTime finds the UT Julian Day at which the apparent solar longitude
// equals longitude, starting the search from nearJD.
func SolarTermTime(longitude, nearJD float64) (float64, error) {
	jd := nearJD
	for i := 0; i < solarTermMaxIterations; i++ {
		diff := normalizeDegrees(longitude - SolarLongitude(jd))
		if diff > 180 {
			diff -= 360
		}
		if math.Abs(diff) < solarTermTolerance {
			return jd, nil
		}
		jd += diff * TropicalYear / 360
	}
	return 0, &ConvergenceError{Op: "solar term", Target: longitude, Last: jd, Iterations: solarTermMaxIterations}
}

// newMoonTerm is one periodic correction of the mean new moon:
// Coeff * E^EPow * sin(M*m + Mp*m' + F*f + O*Ω).
type newMoonTerm struct {
	Coeff        float64
	EPow         int
	M, Mp, F, Om float64
}

var newMoonTerms = []newMoonTerm{
	{-0.40720, 0, 0, 1, 0, 0},
	{0.17241, 1, 1, 0, 0, 0},
	{0.01608, 0, 0, 2, 0, 0},
	{0.01039, 0, 0, 0, 2, 0},
	{0.00739, 1, -1, 1, 0, 0},
	{-0.00514, 1, 1, 1, 0, 0},
	{0.00208, 2, 2, 0, 0, 0},
	{-0.00111, 0, 0, 1, -2, 0},
	{-0.00057, 0, 0, 1, 2, 0},
	{0.00056, 1, 1, 2, 0, 0},
	{-0.00042, 0, 0, 3, 0, 0},
	{0.00042, 1, 1, 0, 2, 0},
	{0.00038, 1, 1, 0, -2, 0},
	{-0.00024, 1, -1, 2, 0, 0},
	{-0.00017, 0, 0, 0, 0, 1},
	{-0.00007, 0, 2, 1, 0, 0},
	{0.00004, 0, 0, 2, -2, 0},
	{0.00004, 0, 3, 0, 0, 0},
	{0.00003, 0, 1, 1, -2, 0},
	{0.00003, 0, 0, 2, 2, 0},
	{-0.00003, 0, 1, 1, 2, 0},
	{0.00003, 0, -1, 1, 2, 0},
	{-0.00002, 0, -1, 1, -2, 0},
	{-0.00002, 0, 1, 3, 0, 0},
	{0.00002, 0, 0, 4, 0, 0},
}

// planetaryTerm is an additional correction Coeff * sin(Base + Rate*k).
type planetaryTerm struct {
	Base, Rate, Coeff float64
}

var planetaryTerms = []planetaryTerm{
	{299.77, 0.107408, 0.000325},
	{251.88, 0.016321, 0.000165},
	{251.83, 26.651886, 0.000164},
	{349.42, 36.412478, 0.000126},
	{84.66, 18.206239, 0.000110},
	{141.74, 53.303771, 0.000062},
	{207.14, 2.453732, 0.000060},
	{154.84, 7.306860, 0.000056},
	{34.52, 27.261239, 0.000047},
	{207.19, 0.121824, 0.000042},
	{291.34, 1.844379, 0.000040},
	{161.72, 24.198154, 0.000037},
	{239.56, 25.513099, 0.000035},
	{331.55, 3.592518, 0.000023},
}

// NewMoon returns the UT Julian Day of true new moon for lunation number k,
// where k = 0 is the new moon of 2000-01-06.
func NewMoon(k int) float64 {
	kf := float64(k)
	T := kf / 1236.85
	T2, T3, T4 := T*T, T*T*T, T*T*T*T

	jde := newMoonEpoch + SynodicMonth*kf + 0.00015437*T2 - 0.000000150*T3 + 0.00000000073*T4
	E := 1 - 0.002516*T - 0.0000074*T2
	M := rad(2.5534 + 29.10535670*kf - 0.0000014*T2 - 0.00000011*T3)
	Mp := rad(201.5643 + 385.81693528*kf + 0.0107582*T2 + 0.00001238*T3 - 0.000000058*T4)
	F := rad(160.7108 + 390.67050284*kf - 0.0016118*T2 - 0.00000227*T3 + 0.000000011*T4)
	Om := rad(124.7746 - 1.56375588*kf + 0.0020672*T2 + 0.00000215*T3)

	corr := 0.0
	for _, term := range newMoonTerms {
		corr += term.Coeff * math.Pow(E, float64(term.EPow)) *
			math.Sin(term.M*M+term.Mp*Mp+term.F*F+term.Om*Om)
	}
	for i, p := range planetaryTerms {
		arg := p.Base + p.Rate*kf
		if i == 0 {
			arg -= 0.009173 * T2
		}
		corr += p.Coeff * math.Sin(rad(arg))
	}
	return toUT(jde + corr)
}

// LunationNumber returns the k whose mean new moon precedes jd.
func LunationNumber(jd float64) int {
	return int(math.Floor((jd - newMoonEpoch) / SynodicMonth))
}

// NewMoonNear returns the true new moon closest to jd.
func NewMoonNear(jd float64) (float64, error) {
	k := int(math.Round((jd - newMoonEpoch) / SynodicMonth))
	for i := 0; i < newMoonMaxIterations; i++ {
		nm := NewMoon(k)
		switch {
		case nm-jd > SynodicMonth/2:
			k--
		case jd-nm > SynodicMonth/2:
			k++
		default:
			return nm, nil
		}
	}
	return 0, &ConvergenceError{Op: "new moon", Target: jd, Last: NewMoon(k), Iterations: newMoonMaxIterations}
}

// SolarTermEvent is the moment the sun enters a solar term.
type SolarTermEvent struct {
	Term domain.SolarTerm
	JD   float64
	Time time.Time
}

// SolarTermsOfYear lists the 24 solar terms of a Gregorian year, from 小寒
// (285°, early January) to 冬至 (270°, late December).
func SolarTermsOfYear(year int) ([]SolarTermEvent, error) {
	start := float64(dateutil.JulianDayNumber(year, 1, 6))
	events := make([]SolarTermEvent, 0, domain.SolarTermCount)
	for i := 0; i < domain.SolarTermCount; i++ {
		lon := normalizeDegrees(285 + 15*float64(i))
		jd, err := SolarTermTime(lon, start+TropicalYear/24*float64(i))
		if err != nil {
			return nil, err
		}
		events = append(events, SolarTermEvent{
			Term: domain.SolarTermAt(lon + 1e-6),
			JD:   jd,
			Time: dateutil.FromJulianDay(jd),
		})
	}
	return events, nil
}
