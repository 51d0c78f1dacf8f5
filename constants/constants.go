package constants

// Exact SI defining constants and frequently used CODATA 2018 values.
const (
	SpeedOfLight     = 299792458.0      // m s^-1
	Planck           = 6.62607015e-34   // J Hz^-1
	HBar             = 1.054571817e-34  // J s
	ElementaryCharge = 1.602176634e-19  // C
	Boltzmann        = 1.380649e-23     // J K^-1
	Avogadro         = 6.02214076e23    // mol^-1
	GasConstant      = 8.314462618      // J mol^-1 K^-1
	StefanBoltzmann  = 5.670374419e-8   // W m^-2 K^-4
	ElectronVolt     = 1.602176634e-19  // J
	StandardGravity  = 9.80665          // m s^-2
	StandardAtm      = 101325.0         // Pa
	Gravitational    = 6.67430e-11      // m^3 kg^-1 s^-2
	ElectronMass     = 9.1093837015e-31 // kg
	ProtonMass       = 1.67262192369e-27
	NeutronMass      = 1.67492749804e-27
	AtomicMass       = 1.66053906660e-27
	FineStructure    = 7.2973525693e-3
	Rydberg          = 10973731.568160  // m^-1
	Epsilon0         = 8.8541878128e-12 // F m^-1
	Mu0              = 1.25663706212e-6 // N A^-2
	BohrRadius       = 5.29177210903e-11
	BohrMagneton     = 9.2740100783e-24 // J T^-1
	Faraday          = 96485.33212      // C mol^-1
)

// table is the name-addressable set. Uncertainty 0 marks an exact value.
var table = []Constant{
	{"speed of light in vacuum", SpeedOfLight, "m s^-1", 0},
	{"Planck constant", Planck, "J Hz^-1", 0},
	{"reduced Planck constant", HBar, "J s", 0},
	{"elementary charge", ElementaryCharge, "C", 0},
	{"Boltzmann constant", Boltzmann, "J K^-1", 0},
	{"Avogadro constant", Avogadro, "mol^-1", 0},
	{"molar gas constant", GasConstant, "J mol^-1 K^-1", 0},
	{"Stefan-Boltzmann constant", StefanBoltzmann, "W m^-2 K^-4", 0},
	{"electron volt", ElectronVolt, "J", 0},
	{"standard acceleration of gravity", StandardGravity, "m s^-2", 0},
	{"standard atmosphere", StandardAtm, "Pa", 0},
	{"Faraday constant", Faraday, "C mol^-1", 0},
	{"Wien wavelength displacement law constant", 2.897771955e-3, "m K", 0},
	{"Newtonian constant of gravitation", Gravitational, "m^3 kg^-1 s^-2", 0.00015e-11},
	{"electron mass", ElectronMass, "kg", 0.0000000028e-31},
	{"proton mass", ProtonMass, "kg", 0.00000000051e-27},
	{"neutron mass", NeutronMass, "kg", 0.00000000095e-27},
	{"atomic mass constant", AtomicMass, "kg", 0.00000000050e-27},
	{"fine-structure constant", FineStructure, "", 0.0000000011e-3},
	{"Rydberg constant", Rydberg, "m^-1", 0.000021},
	{"vacuum electric permittivity", Epsilon0, "F m^-1", 0.0000000013e-12},
	{"vacuum mag. permeability", Mu0, "N A^-2", 0.00000000019e-6},
	{"Bohr radius", BohrRadius, "m", 0.00000000080e-11},
	{"Bohr magneton", BohrMagneton, "J T^-1", 0.0000000028e-24},
	{"classical electron radius", 2.8179403262e-15, "m", 0.0000000013e-15},
	{"proton-electron mass ratio", 1836.15267343, "", 0.00000011},
}
