package physconst

// EnergyUnit is a unit of energy accepted by [ConvertEnergy].
type EnergyUnit string

const (
	Joule        EnergyUnit = "J"
	Electronvolt EnergyUnit = "eV"
)

// ParseEnergyUnit returns the energy unit named by s. It accepts the
// unit symbol ("J", "eV") or the name ("joule", "electronvolt"), ignoring
// case.
func ParseEnergyUnit(s string) (EnergyUnit, error) {
	switch lower(s) {
	case "j", "joule", "joules":
		return Joule, nil
	case "ev", "electronvolt", "electronvolts", "electron-volt":
		return Electronvolt, nil
	}
	return "", &ParseError{Input: s, Err: ErrUnknownUnit}
}

// JoulesToElectronvolts converts j joules to electronvolts using the
// elementary charge [E]. Any value is accepted.
func JoulesToElectronvolts(j float64) float64 {
	return j / E
}

// ElectronvoltsToJoules converts ev electronvolts to joules using the
// elementary charge [E]. Any value is accepted.
func ElectronvoltsToJoules(ev float64) float64 {
	return ev * E
}

// ConvertEnergy converts v between joules and electronvolts.
func ConvertEnergy(v float64, from, to EnergyUnit) (float64, error) {
	switch {
	case from == to && (from == Joule || from == Electronvolt):
		return v, nil
	case from == Joule && to == Electronvolt:
		return JoulesToElectronvolts(v), nil
	case from == Electronvolt && to == Joule:
		return ElectronvoltsToJoules(v), nil
	case from != Joule && from != Electronvolt:
		return 0, &ParseError{Input: string(from), Err: ErrUnknownUnit}
	}
	return 0, &ParseError{Input: string(to), Err: ErrUnknownUnit}
}
