package physconst

import (
	"errors"
	"testing"
)

func TestJoulesToElectronvolts(t *testing.T) {
	if got, want := JoulesToElectronvolts(1.0), 6.241509125883258e18; !approxEqual(got/want, 1) {
		t.Errorf("Wanted %v, got %v", want, got)
	}
	if got := JoulesToElectronvolts(E); got != 1 {
		t.Errorf("e J: Wanted 1 eV, got %v", got)
	}
	if got := JoulesToElectronvolts(-2 * E); !approxEqual(got, -2) {
		t.Errorf("-2e J: Wanted -2 eV, got %v", got)
	}
}

func TestElectronvoltsToJoules(t *testing.T) {
	if got := ElectronvoltsToJoules(1); got != E {
		t.Errorf("Wanted %v, got %v", E, got)
	}
}

func TestEnergyRoundTrip(t *testing.T) {
	for _, x := range []float64{5.0, -5.0, 0, 1e-30, 1e30} {
		got := ElectronvoltsToJoules(JoulesToElectronvolts(x))
		if x == 0 {
			if got != 0 {
				t.Errorf("0: got %v", got)
			}
			continue
		}
		if !approxEqual(got/x, 1) {
			t.Errorf("%v: got %v", x, got)
		}
	}
}

func TestConvertEnergy(t *testing.T) {
	var tests = []struct {
		from, to string
		in, want float64
	}{
		{"J", "eV", 1, 6.241509125883258e18},
		{"eV", "J", 1, E},
		{"joule", "joules", 3, 3},
		{"electronvolt", "EV", 3, 3},
	}
	for _, tt := range tests {
		from, err := ParseEnergyUnit(tt.from)
		if err != nil {
			t.Fatalf("%s: %v", tt.from, err)
		}
		to, err := ParseEnergyUnit(tt.to)
		if err != nil {
			t.Fatalf("%s: %v", tt.to, err)
		}
		got, err := ConvertEnergy(tt.in, from, to)
		if err != nil {
			t.Errorf("%s->%s: %v", tt.from, tt.to, err)
		} else if !approxEqual(got/tt.want, 1) {
			t.Errorf("%s->%s: Wanted %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
	if _, err := ParseEnergyUnit("cal"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("cal: Wanted ErrUnknownUnit, got %v", err)
	}
	if _, err := ConvertEnergy(1, Joule, "cal"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("J->cal: Wanted ErrUnknownUnit, got %v", err)
	}
	if _, err := ConvertEnergy(1, "cal", "cal"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("cal->cal: Wanted ErrUnknownUnit, got %v", err)
	}
}
