package physconst

var table = [...]Constant{
	{
		Symbol:      "c",
		Name:        "c",
		Value:       C,
		Unit:        "m/s",
		Uncertainty: Exact,
		Description: "speed of light in vacuum",
		Group:       Universal,
	},
	{
		Symbol:      "G",
		Name:        "G",
		Value:       G,
		Unit:        "m^3 kg^-1 s^-2",
		Uncertainty: 4.7e-5,
		Description: "Newtonian constant of gravitation",
		Group:       Universal,
	},
	{
		Symbol:      "h",
		Name:        "h",
		Value:       H,
		Unit:        "J s",
		Uncertainty: 1.2e-8,
		Description: "Planck constant",
		Group:       Universal,
	},
	{
		Symbol:      "hbar",
		Name:        `\hbar`,
		Value:       Hbar,
		Unit:        "J s",
		Uncertainty: 1.2e-8,
		Description: "reduced Planck constant",
		Formula:     "h/(2*pi)",
		Group:       Universal,
	},
	{
		Symbol:      "mu_0",
		Name:        `\mu_0`,
		Value:       Mu0,
		Unit:        "N A^-2",
		Uncertainty: Exact,
		Description: "magnetic constant (vacuum permeability)",
		Formula:     "4*pi*1e-7",
		Group:       Electromagnetic,
	},
	{
		Symbol:      "e_0",
		Name:        `\epsilon_0`,
		Value:       Epsilon0,
		Unit:        "F/m",
		Uncertainty: Exact,
		Description: "electric constant (vacuum permittivity)",
		Formula:     "1/(mu_0*c^2)",
		Group:       Electromagnetic,
	},
	{
		Symbol:      "k_e",
		Name:        "k_e",
		Value:       Ke,
		Unit:        "kg m^3 s^-4 A^-2",
		Uncertainty: Exact,
		Description: "Coulomb constant",
		Formula:     "1/(4*pi*e_0)",
		Group:       Electromagnetic,
	},
	{
		Symbol:      "e",
		Name:        "e",
		Value:       E,
		Unit:        "C",
		Uncertainty: 6.1e-9,
		Description: "elementary charge",
		Group:       Electromagnetic,
	},
	{
		Symbol:      "a",
		Name:        `\alpha`,
		Value:       Alpha,
		Unit:        "",
		Uncertainty: 2.3e-10,
		Description: "fine-structure constant",
		Formula:     "e^2/(4*pi*e_0*hbar*c)",
		Group:       AtomicNuclear,
	},
	{
		Symbol:      "m_e",
		Name:        "m_e",
		Value:       Me,
		Unit:        "kg",
		Uncertainty: 1.2e-8,
		Description: "electron mass",
		Group:       AtomicNuclear,
	},
	{
		Symbol:      "m_p",
		Name:        "m_p",
		Value:       Mp,
		Unit:        "kg",
		Uncertainty: 1.2e-8,
		Description: "proton mass",
		Group:       AtomicNuclear,
	},
	{
		Symbol:      "a_0",
		Name:        "a_0",
		Value:       A0,
		Unit:        "m",
		Uncertainty: 2.3e-9,
		Description: "Bohr radius",
		Formula:     "hbar/(a*m_e*c)",
		Group:       AtomicNuclear,
	},
	{
		Symbol:      "r_e",
		Name:        "r_e",
		Value:       Re,
		Unit:        "m",
		Uncertainty: 6.8e-10,
		Description: "classical electron radius",
		Formula:     "e^2/(4*pi*e_0*m_e*c^2)",
		Group:       AtomicNuclear,
	},
	{
		Symbol:      "N_A",
		Name:        "N_A",
		Value:       NA,
		Unit:        "mol^-1",
		Uncertainty: 1.2e-8,
		Description: "Avogadro constant",
		Group:       PhysicoChemical,
	},
	{
		Symbol:      "k_B",
		Name:        "k_B",
		Value:       KB,
		Unit:        "J/K",
		Uncertainty: 5.7e-7,
		Description: "Boltzmann constant",
		Group:       PhysicoChemical,
	},
	{
		Symbol:      "R",
		Name:        "R",
		Value:       R,
		Unit:        "J mol^-1 K^-1",
		Uncertainty: 5.7e-7,
		Description: "molar gas constant",
		Formula:     "N_A*k_B",
		Group:       PhysicoChemical,
	},
	{
		Symbol:      "m_u",
		Name:        "m_u",
		Value:       Mu,
		Unit:        "kg",
		Uncertainty: 1.2e-8,
		Description: "atomic mass constant",
		Group:       PhysicoChemical,
	},
	{
		Symbol:      "g_n",
		Name:        "g_n",
		Value:       Gn,
		Unit:        "m/s^2",
		Uncertainty: Exact,
		Description: "standard acceleration of gravity",
		Group:       Adopted,
	},
	{
		Symbol:      "atm",
		Name:        "atm",
		Value:       Atm,
		Unit:        "Pa",
		Uncertainty: Exact,
		Description: "standard atmosphere",
		Group:       Adopted,
	},
}

// aliases maps alternative spellings to the canonical symbol.
var aliases = map[string]string{
	"alpha":     "a",
	"epsilon_0": "e_0",
	"mu":        "m_u",
}

var bySymbol = func() map[string]int {
	m := make(map[string]int, len(table)+len(aliases))
	for i := range table {
		m[table[i].Symbol] = i
	}
	for alias, sym := range aliases {
		m[alias] = m[sym]
	}
	return m
}()

// Lookup returns the constant with the given symbol. Symbols are case
// sensitive since, for example, "G" and "g_n" or "R" and "r_e" differ
// only by case. The aliases "alpha", "epsilon_0" and "mu" are accepted.
func Lookup(symbol string) (Constant, bool) {
	i, ok := bySymbol[symbol]
	if !ok {
		return Constant{}, false
	}
	return table[i], true
}

// Find is like [Lookup] but returns an error wrapping [ErrUnknownSymbol]
// if symbol is unknown.
func Find(symbol string) (Constant, error) {
	c, ok := Lookup(symbol)
	if !ok {
		return c, errUnknownSymbol(symbol)
	}
	return c, nil
}

// MustLookup is like [Lookup] but panics if symbol is unknown.
func MustLookup(symbol string) Constant {
	c, err := Find(symbol)
	if err != nil {
		panic("physconst: " + err.Error())
	}
	return c
}

// All returns a copy of the table in declaration order.
func All() []Constant {
	cc := make([]Constant, len(table))
	copy(cc, table[:])
	return cc
}

// ByGroup returns the constants of group g in declaration order.
func ByGroup(g Group) []Constant {
	var cc []Constant
	for _, c := range table {
		if c.Group == g {
			cc = append(cc, c)
		}
	}
	return cc
}

// Symbols returns the canonical symbol of every constant in declaration order.
func Symbols() []string {
	ss := make([]string, len(table))
	for i := range table {
		ss[i] = table[i].Symbol
	}
	return ss
}
