package physconst

// Universal constants.
const (
	C    = 299792458       // speed of light in vacuum [m s^-1]
	G    = 6.67408e-11     // Newtonian constant of gravitation [m^3 kg^-1 s^-2]
	H    = 6.626070040e-34 // Planck constant [J s]
	Hbar = 1.054571800e-34 // reduced Planck constant, h/(2*pi) [J s]
)

// Electromagnetic constants.
const (
	Mu0      = 1.256637061e-6       // magnetic constant, 4*pi*1e-7 [N A^-2]
	Epsilon0 = 8.854187817e-12      // electric constant, 1/(mu_0*c^2) [F m^-1]
	Ke       = 8.9875517873681764e9 // Coulomb constant, 1/(4*pi*e_0) [kg m^3 s^-4 A^-2]
	E        = 1.6021766208e-19     // elementary charge [C]
)

// Atomic and nuclear constants.
const (
	Alpha = 7.2973525664e-3  // fine-structure constant, e^2/(4*pi*e_0*hbar*c)
	Me    = 9.10938356e-31   // electron mass [kg]
	Mp    = 1.672621898e-27  // proton mass [kg]
	A0    = 5.2917721067e-11 // Bohr radius, hbar/(a*m_e*c) [m]
	Re    = 2.8179403227e-15 // classical electron radius [m]
)

// Physico-chemical constants.
const (
	NA = 6.022140858e23  // Avogadro constant [mol^-1]
	KB = 1.38064853e-23  // Boltzmann constant [J K^-1]
	R  = 8.3144598       // molar gas constant, N_A*k_B [J mol^-1 K^-1]
	Mu = 1.660539040e-27 // atomic mass constant [kg]
)

// Adopted values.
const (
	Gn  = 9.80665 // standard acceleration of gravity [m s^-2]
	Atm = 101325  // standard atmosphere [Pa]
)
