package physconst

import "strings"

// Unit is a temperature scale.
type Unit byte

const (
	Celsius    Unit = 'C'
	Fahrenheit Unit = 'F'
	Kelvin     Unit = 'K'
	Rankine    Unit = 'R'
)

// Absolute zero in each scale.
const (
	absZeroC = -273.15
	absZeroF = -459.67
	absZeroK = 0
	absZeroR = 0
)

func (u Unit) String() string {
	switch u {
	case Celsius, Fahrenheit, Rankine:
		return "°" + string(rune(u))
	case Kelvin:
		return "K"
	}
	return "Unit(" + string(rune(u)) + ")"
}

// Valid reports whether u is one of the known scales.
func (u Unit) Valid() bool {
	switch u {
	case Celsius, Fahrenheit, Kelvin, Rankine:
		return true
	}
	return false
}

// AbsoluteZero returns the coldest value representable in u.
func (u Unit) AbsoluteZero() float64 {
	switch u {
	case Celsius:
		return absZeroC
	case Fahrenheit:
		return absZeroF
	case Kelvin:
		return absZeroK
	case Rankine:
		return absZeroR
	}
	return 0
}

// MarshalText implements [encoding.TextMarshaler]. The result is the
// single letter of the scale.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, &ParseError{Input: string(rune(u)), Err: ErrUnknownUnit}
	}
	return []byte{byte(u)}, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] by calling [ParseUnit].
func (u *Unit) UnmarshalText(b []byte) (err error) {
	*u, err = ParseUnit(string(b))
	return
}

// ParseUnit returns the temperature scale named by s. It accepts the
// scale letter, with or without a degree sign, or its full name,
// ignoring case. For example "c", "°C" and "Celsius" all return [Celsius].
func ParseUnit(s string) (Unit, error) {
	t := strings.TrimPrefix(lower(s), "°")
	t = strings.TrimPrefix(t, "deg")
	switch t {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	case "k", "kelvin":
		return Kelvin, nil
	case "r", "rankine":
		return Rankine, nil
	}
	return 0, &ParseError{Input: s, Err: ErrUnknownUnit}
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func checkRange(v float64, u Unit) error {
	if bound := u.AbsoluteZero(); v < bound {
		return &RangeError{Value: v, Bound: bound, Unit: u}
	}
	return nil
}

// The explicit float64 conversions below keep the compiler from fusing
// a multiply and an add, which would change the result in the last bit
// on some architectures.

// CelsiusToFahrenheit converts c from degrees Celsius to degrees Fahrenheit.
func CelsiusToFahrenheit(c float64) (float64, error) {
	if err := checkRange(c, Celsius); err != nil {
		return 0, err
	}
	return float64(c*1.8) + 32, nil
}

// FahrenheitToCelsius converts f from degrees Fahrenheit to degrees Celsius.
func FahrenheitToCelsius(f float64) (float64, error) {
	if err := checkRange(f, Fahrenheit); err != nil {
		return 0, err
	}
	return (f - 32) / 1.8, nil
}

// CelsiusToKelvin converts c from degrees Celsius to kelvin.
func CelsiusToKelvin(c float64) (float64, error) {
	if err := checkRange(c, Celsius); err != nil {
		return 0, err
	}
	return c + 273.15, nil
}

// KelvinToCelsius converts k from kelvin to degrees Celsius.
func KelvinToCelsius(k float64) (float64, error) {
	if err := checkRange(k, Kelvin); err != nil {
		return 0, err
	}
	return k - 273.15, nil
}

// FahrenheitToKelvin converts f from degrees Fahrenheit to kelvin.
func FahrenheitToKelvin(f float64) (float64, error) {
	if err := checkRange(f, Fahrenheit); err != nil {
		return 0, err
	}
	return float64((f-32)/1.8) + 273.15, nil
}

// KelvinToFahrenheit converts k from kelvin to degrees Fahrenheit.
func KelvinToFahrenheit(k float64) (float64, error) {
	if err := checkRange(k, Kelvin); err != nil {
		return 0, err
	}
	return float64((k-273.15)*1.8) + 32, nil
}

// ConvertTemperature converts v from one scale to another. Conversions
// between Celsius, Fahrenheit and Kelvin give exactly the same result as
// the corresponding named function. Rankine is converted through Kelvin.
//
// If v is below absolute zero in from, ConvertTemperature returns a
// [*RangeError].
func ConvertTemperature(v float64, from, to Unit) (float64, error) {
	if !from.Valid() {
		return 0, &ParseError{Input: string(rune(from)), Err: ErrUnknownUnit}
	}
	if !to.Valid() {
		return 0, &ParseError{Input: string(rune(to)), Err: ErrUnknownUnit}
	}
	if err := checkRange(v, from); err != nil {
		return 0, err
	}
	if from == to {
		return v, nil
	}

	if from == Rankine {
		// Range is already checked, so the intermediate kelvin value is valid.
		v, from = v/1.8, Kelvin
		if to == Kelvin {
			return v, nil
		}
	}

	switch from {
	case Celsius:
		switch to {
		case Fahrenheit:
			return CelsiusToFahrenheit(v)
		case Kelvin:
			return CelsiusToKelvin(v)
		case Rankine:
			k, err := CelsiusToKelvin(v)
			return k * 1.8, err
		}
	case Fahrenheit:
		switch to {
		case Celsius:
			return FahrenheitToCelsius(v)
		case Kelvin:
			return FahrenheitToKelvin(v)
		case Rankine:
			k, err := FahrenheitToKelvin(v)
			return k * 1.8, err
		}
	case Kelvin:
		switch to {
		case Celsius:
			return KelvinToCelsius(v)
		case Fahrenheit:
			return KelvinToFahrenheit(v)
		case Rankine:
			return v * 1.8, nil
		}
	}
	return 0, &ParseError{Input: string(rune(to)), Err: ErrUnknownUnit}
}
