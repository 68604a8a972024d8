package physconst

import (
	"errors"
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	const tol = 1e-9
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

type tempFunc func(float64) (float64, error)

func TestTemperatureScenarios(t *testing.T) {
	var tests = []struct {
		name string
		fn   tempFunc
		in   float64
		want float64
	}{
		{"CelsiusToFahrenheit", CelsiusToFahrenheit, 26.5, 79.7},
		{"CelsiusToFahrenheit", CelsiusToFahrenheit, -273.15, -459.67},
		{"CelsiusToFahrenheit", CelsiusToFahrenheit, 100, 212},
		{"FahrenheitToCelsius", FahrenheitToCelsius, 40.5, 4.722222222222222},
		{"FahrenheitToCelsius", FahrenheitToCelsius, -40, -40},
		{"CelsiusToKelvin", CelsiusToKelvin, 26.5, 299.65},
		{"KelvinToCelsius", KelvinToCelsius, 0, -273.15},
		{"FahrenheitToKelvin", FahrenheitToKelvin, 40.5, 277.8722222222222},
		{"FahrenheitToKelvin", FahrenheitToKelvin, -459.67, 0},
		{"KelvinToFahrenheit", KelvinToFahrenheit, 0, -459.67},
		{"KelvinToFahrenheit", KelvinToFahrenheit, 373.15, 212},
	}
	for _, tt := range tests {
		got, err := tt.fn(tt.in)
		if err != nil {
			t.Errorf("%s(%v): %v", tt.name, tt.in, err)
			continue
		}
		if !approxEqual(got, tt.want) {
			t.Errorf("%s(%v): Wanted %v, got %v", tt.name, tt.in, tt.want, got)
		}
	}
}

func TestTemperatureBounds(t *testing.T) {
	var tests = []struct {
		name  string
		fn    tempFunc
		bound float64
		unit  Unit
	}{
		{"CelsiusToFahrenheit", CelsiusToFahrenheit, -273.15, Celsius},
		{"FahrenheitToCelsius", FahrenheitToCelsius, -459.67, Fahrenheit},
		{"CelsiusToKelvin", CelsiusToKelvin, -273.15, Celsius},
		{"KelvinToCelsius", KelvinToCelsius, 0, Kelvin},
		{"FahrenheitToKelvin", FahrenheitToKelvin, -459.67, Fahrenheit},
		{"KelvinToFahrenheit", KelvinToFahrenheit, 0, Kelvin},
	}
	for _, tt := range tests {
		if _, err := tt.fn(tt.bound); err != nil {
			t.Errorf("%s(%v): Wanted success, got %v", tt.name, tt.bound, err)
		}

		below := math.Nextafter(tt.bound, math.Inf(-1))
		for _, in := range []float64{below, tt.bound - 0.001, tt.bound - 1000} {
			_, err := tt.fn(in)
			if !errors.Is(err, ErrOutOfPhysicalRange) {
				t.Errorf("%s(%v): Wanted ErrOutOfPhysicalRange, got %v", tt.name, in, err)
				continue
			}
			var rerr *RangeError
			if !errors.As(err, &rerr) {
				t.Errorf("%s(%v): Wanted *RangeError, got %T", tt.name, in, err)
				continue
			}
			if rerr.Value != in || rerr.Bound != tt.bound || rerr.Unit != tt.unit {
				t.Errorf("%s(%v): Wanted {%v %v %v}, got %+v", tt.name, in, in, tt.bound, tt.unit, *rerr)
			}
		}
	}
}

var samples = []float64{-273.15, -200, -40, -0.5, 0, 1e-9, 26.5, 36.6, 100, 1234.5678, 5e6}

func TestTemperatureRoundTrip(t *testing.T) {
	for _, x := range samples {
		f, err := CelsiusToFahrenheit(x)
		if err != nil {
			t.Fatal(err)
		}
		c, err := FahrenheitToCelsius(f)
		if err != nil {
			t.Fatal(err)
		}
		if !approxEqual(c, x) {
			t.Errorf("C->F->C %v: got %v", x, c)
		}

		k, err := CelsiusToKelvin(x)
		if err != nil {
			t.Fatal(err)
		}
		c, err = KelvinToCelsius(k)
		if err != nil {
			t.Fatal(err)
		}
		if !approxEqual(c, x) {
			t.Errorf("C->K->C %v: got %v", x, c)
		}
	}
}

func TestTemperatureCrossConsistency(t *testing.T) {
	for _, x := range samples {
		k, _ := CelsiusToKelvin(x)
		f, _ := CelsiusToFahrenheit(x)
		// f may land a hair below -459.67 after rounding at absolute zero.
		if f < absZeroF {
			f = absZeroF
		}
		fk, err := FahrenheitToKelvin(f)
		if err != nil {
			t.Fatalf("%v: %v", x, err)
		}
		if !approxEqual(k, fk) {
			t.Errorf("%v: C->K = %v, C->F->K = %v", x, k, fk)
		}

		kf, _ := KelvinToFahrenheit(k)
		if !approxEqual(kf, f) {
			t.Errorf("%v: C->F = %v, C->K->F = %v", x, f, kf)
		}
	}
}

func TestConvertTemperatureMatchesNamed(t *testing.T) {
	var tests = []struct {
		from, to Unit
		fn       tempFunc
	}{
		{Celsius, Fahrenheit, CelsiusToFahrenheit},
		{Fahrenheit, Celsius, FahrenheitToCelsius},
		{Celsius, Kelvin, CelsiusToKelvin},
		{Kelvin, Celsius, KelvinToCelsius},
		{Fahrenheit, Kelvin, FahrenheitToKelvin},
		{Kelvin, Fahrenheit, KelvinToFahrenheit},
	}
	for _, tt := range tests {
		for _, x := range []float64{0, 26.5, 40.5, 300, 1e4} {
			want, _ := tt.fn(x)
			got, err := ConvertTemperature(x, tt.from, tt.to)
			if err != nil {
				t.Errorf("%v->%v %v: %v", tt.from, tt.to, x, err)
			} else if got != want {
				t.Errorf("%v->%v %v: Wanted %v, got %v", tt.from, tt.to, x, want, got)
			}
		}
	}
}

func TestConvertTemperatureRankine(t *testing.T) {
	var tests = []struct {
		in       float64
		from, to Unit
		want     float64
	}{
		{0, Kelvin, Rankine, 0},
		{100, Kelvin, Rankine, 180},
		{180, Rankine, Kelvin, 100},
		{491.67, Rankine, Celsius, 0},
		{491.67, Rankine, Fahrenheit, 32},
		{0, Celsius, Rankine, 491.67},
		{32, Fahrenheit, Rankine, 491.67},
		{12.5, Rankine, Rankine, 12.5},
	}
	for _, tt := range tests {
		got, err := ConvertTemperature(tt.in, tt.from, tt.to)
		if err != nil {
			t.Errorf("%v %v->%v: %v", tt.in, tt.from, tt.to, err)
		} else if !approxEqual(got, tt.want) {
			t.Errorf("%v %v->%v: Wanted %v, got %v", tt.in, tt.from, tt.to, tt.want, got)
		}
	}
	if _, err := ConvertTemperature(-1, Rankine, Kelvin); !errors.Is(err, ErrOutOfPhysicalRange) {
		t.Errorf("-1 °R: Wanted ErrOutOfPhysicalRange, got %v", err)
	}
}

func TestConvertTemperatureErrors(t *testing.T) {
	if _, err := ConvertTemperature(-300, Celsius, Celsius); !errors.Is(err, ErrOutOfPhysicalRange) {
		t.Errorf("same unit: Wanted ErrOutOfPhysicalRange, got %v", err)
	}
	if _, err := ConvertTemperature(1, Unit('X'), Celsius); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("from X: Wanted ErrUnknownUnit, got %v", err)
	}
	if _, err := ConvertTemperature(1, Celsius, Unit('X')); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("to X: Wanted ErrUnknownUnit, got %v", err)
	}
}

func TestParseUnit(t *testing.T) {
	var tests = []struct {
		in   string
		want Unit
		fail bool
	}{
		{"C", Celsius, false},
		{"c", Celsius, false},
		{"°C", Celsius, false},
		{"degF", Fahrenheit, false},
		{"Fahrenheit", Fahrenheit, false},
		{"kelvin", Kelvin, false},
		{" K ", Kelvin, false},
		{"rankine", Rankine, false},
		{"X", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseUnit(tt.in)
		if tt.fail {
			if !errors.Is(err, ErrUnknownUnit) {
				t.Errorf("%q: Wanted ErrUnknownUnit, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
		} else if got != tt.want {
			t.Errorf("%q: Wanted %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestUnitString(t *testing.T) {
	var tests = []struct {
		in   Unit
		want string
	}{
		{Celsius, "°C"},
		{Fahrenheit, "°F"},
		{Kelvin, "K"},
		{Rankine, "°R"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Wanted %s, got %s", tt.want, got)
		}
		b, err := tt.in.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var u Unit
		if err := u.UnmarshalText(b); err != nil || u != tt.in {
			t.Errorf("%s: text round trip gave %v, %v", tt.want, u, err)
		}
	}
}

func TestRangeErrorMessage(t *testing.T) {
	_, err := CelsiusToKelvin(-300)
	want := "temperature -300 °C is below absolute zero (-273.15 °C)"
	if err == nil || err.Error() != want {
		t.Errorf("Wanted %q, got %v", want, err)
	}
}
