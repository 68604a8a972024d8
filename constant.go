package physconst

import (
	"strconv"
	"strings"
)

// A Group is one of the sections of the constant table.
type Group uint8

const (
	Universal Group = iota
	Electromagnetic
	AtomicNuclear
	PhysicoChemical
	Adopted

	numGroups
)

var groupNames = [numGroups]string{
	Universal:       "universal",
	Electromagnetic: "electromagnetic",
	AtomicNuclear:   "atomic and nuclear",
	PhysicoChemical: "physico-chemical",
	Adopted:         "adopted values",
}

var groupKeys = map[string]Group{
	"universal":          Universal,
	"electromagnetic":    Electromagnetic,
	"em":                 Electromagnetic,
	"atomic":             AtomicNuclear,
	"nuclear":            AtomicNuclear,
	"atomic and nuclear": AtomicNuclear,
	"chemical":           PhysicoChemical,
	"physico-chemical":   PhysicoChemical,
	"adopted":            Adopted,
	"adopted values":     Adopted,
}

// Groups returns every group in table order.
func Groups() []Group {
	gg := make([]Group, numGroups)
	for i := range gg {
		gg[i] = Group(i)
	}
	return gg
}

func (g Group) String() string {
	if g >= numGroups {
		return "Group(" + strconv.Itoa(int(g)) + ")"
	}
	return groupNames[g]
}

// Key returns the short name accepted by [ParseGroup].
func (g Group) Key() string {
	switch g {
	case Universal:
		return "universal"
	case Electromagnetic:
		return "em"
	case AtomicNuclear:
		return "atomic"
	case PhysicoChemical:
		return "chemical"
	case Adopted:
		return "adopted"
	}
	return g.String()
}

// ParseGroup returns the group named by s, ignoring case. Both the full
// name returned by [Group.String] and the key returned by [Group.Key]
// are accepted.
func ParseGroup(s string) (Group, error) {
	if g, ok := groupKeys[lower(s)]; ok {
		return g, nil
	}
	return 0, &ParseError{Input: s, Err: ErrUnknownGroup}
}

// Uncertainty is the relative standard uncertainty of a constant.
// The zero value is [Exact].
type Uncertainty float64

// Exact marks a constant whose value is fixed by definition.
const Exact Uncertainty = 0

// String returns "exact" for [Exact] and the %g formatting of u otherwise.
func (u Uncertainty) String() string {
	if u == Exact {
		return "exact"
	}
	return strconv.FormatFloat(float64(u), 'g', -1, 64)
}

// MarshalText implements [encoding.TextMarshaler] by calling [Uncertainty.String].
func (u Uncertainty) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts
// "exact" or "defined" in any case, or a floating point number.
func (u *Uncertainty) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "exact", "defined":
		*u = Exact
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*u = Uncertainty(f)
	return nil
}

// Constant describes one entry of the constant table.
type Constant struct {
	Symbol      string      `json:"symbol" yaml:"symbol"`
	Name        string      `json:"name" yaml:"name"`
	Value       float64     `json:"value" yaml:"value"`
	Unit        string      `json:"unit" yaml:"unit"`
	Uncertainty Uncertainty `json:"uncertainty" yaml:"uncertainty"`
	Description string      `json:"description" yaml:"description"`
	Formula     string      `json:"formula,omitempty" yaml:"formula,omitempty"`
	Group       Group       `json:"-" yaml:"-"`
}

// IsExact reports whether the value of c is fixed by definition.
func (c Constant) IsExact() bool {
	return c.Uncertainty == Exact
}

// AbsoluteUncertainty returns the standard uncertainty of c in its own unit.
func (c Constant) AbsoluteUncertainty() float64 {
	return c.Value * float64(c.Uncertainty)
}

// String returns c formatted as "symbol = value unit".
func (c Constant) String() string {
	s := c.Symbol + " = " + strconv.FormatFloat(c.Value, 'g', -1, 64)
	if c.Unit != "" {
		s += " " + c.Unit
	}
	return s
}
