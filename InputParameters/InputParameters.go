package InputParameters

import (
	"fmt"
	"math"

	"github.com/ghodss/yaml"

	"github.com/notargets/hydrocode/FV1D"
)

// Region is one piecewise-constant slab of the initial data.
type Region struct {
	XMin float64 `yaml:"XMin"`
	XMax float64 `yaml:"XMax"`
	Rho  float64 `yaml:"Rho"`
	U    float64 `yaml:"U"`
	V    float64 `yaml:"V"`
	P    float64 `yaml:"P"`
}

// Parameters obtained from the YAML input file. Optional numeric slots
// default to +Inf so the engine's validation can tell "unset" from a
// deliberate zero.
type InputParameters1D struct {
	Title             string   `yaml:"Title"`
	Gamma             float64  `yaml:"Gamma"`
	FinalTime         float64  `yaml:"FinalTime"`
	Eps               float64  `yaml:"Eps"`
	MaxSteps          int      `yaml:"MaxSteps"`
	CFL               float64  `yaml:"CFL"`
	NCells            int      `yaml:"NCells"`
	Tau               float64  `yaml:"Tau"`
	Alpha             float64  `yaml:"Alpha"`
	Order             int      `yaml:"Order"`
	Coordinate        string   `yaml:"Coordinate"`
	BoundaryCondition string   `yaml:"BoundaryCondition"`
	Regions           []Region `yaml:"Regions"`
}

// NewInputParameters1D carries the sentinel defaults.
func NewInputParameters1D() *InputParameters1D {
	return &InputParameters1D{
		Gamma:             1.4,
		FinalTime:         math.Inf(1),
		Eps:               1.e-9,
		MaxSteps:          1000000,
		CFL:               math.Inf(1),
		Tau:               math.Inf(1),
		Alpha:             math.Inf(1),
		Order:             1,
		Coordinate:        "EUL",
		BoundaryCondition: "free",
	}
}

// DefaultSod is the canonical shock tube preset used when no input file
// is given.
func DefaultSod() *InputParameters1D {
	ip := NewInputParameters1D()
	ip.Title = "Sod shock tube"
	ip.FinalTime = 0.2
	ip.CFL = 0.45
	ip.NCells = 200
	ip.Alpha = 1.9
	ip.Order = 2
	ip.Regions = []Region{
		{XMin: 0, XMax: 0.5, Rho: 1, U: 0, P: 1},
		{XMin: 0.5, XMax: 1, Rho: 0.125, U: 0, P: 0.1},
	}
	return ip
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("[%d]\t\t\t= NCells\n", ip.NCells)
	fmt.Printf("[%d]\t\t\t= Order\n", ip.Order)
	fmt.Printf("[%s]\t\t\t= Coordinate\n", ip.Coordinate)
	fmt.Printf("[%s]\t\t= Boundary Condition\n", ip.BoundaryCondition)
	for i, r := range ip.Regions {
		fmt.Printf("Regions[%d] = %+v\n", i, r)
	}
}

// Domain is the x extent spanned by the regions.
func (ip *InputParameters1D) Domain() (xmin, xmax float64, err error) {
	if len(ip.Regions) == 0 {
		err = fmt.Errorf("%w: no initial regions", FV1D.ErrConfiguration)
		return
	}
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for i, r := range ip.Regions {
		if r.XMax <= r.XMin {
			err = fmt.Errorf("%w: region %d has XMax %g <= XMin %g",
				FV1D.ErrConfiguration, i, r.XMax, r.XMin)
			return
		}
		xmin = math.Min(xmin, r.XMin)
		xmax = math.Max(xmax, r.XMax)
	}
	return
}

// RunParameters translates the parsed input into the engine
// configuration. Validation proper is the engine's job.
func (ip *InputParameters1D) RunParameters() (rp FV1D.RunParameters, err error) {
	if ip.NCells <= 0 {
		err = fmt.Errorf("%w: NCells = %d must be positive", FV1D.ErrConfiguration, ip.NCells)
		return
	}
	xmin, xmax, err := ip.Domain()
	if err != nil {
		return
	}
	coord, err := FV1D.NewCoordinate(ip.Coordinate)
	if err != nil {
		return
	}
	bc, err := FV1D.NewBCType(ip.BoundaryCondition)
	if err != nil {
		return
	}
	rp = FV1D.RunParameters{
		Gamma:     ip.Gamma,
		FinalTime: ip.FinalTime,
		Eps:       ip.Eps,
		MaxSteps:  ip.MaxSteps,
		CFL:       ip.CFL,
		H:         (xmax - xmin) / float64(ip.NCells),
		Tau:       ip.Tau,
		Alpha:     ip.Alpha,
		Order:     ip.Order,
		Coord:     coord,
		BC:        bc,
	}
	return
}

// InitialCondition samples the regions at the cell centers. Every cell
// center must fall inside some region.
func (ip *InputParameters1D) InitialCondition() (ic FV1D.InitialCondition, err error) {
	xmin, xmax, err := ip.Domain()
	if err != nil {
		return
	}
	if ip.NCells <= 0 {
		err = fmt.Errorf("%w: NCells = %d must be positive", FV1D.ErrConfiguration, ip.NCells)
		return
	}
	var (
		m        = ip.NCells
		h        = (xmax - xmin) / float64(m)
		needV    bool
		regionOf = func(x float64) *Region {
			for i := range ip.Regions {
				r := &ip.Regions[i]
				if x >= r.XMin && x < r.XMax {
					return r
				}
			}
			// The rightmost boundary belongs to the last covering region
			for i := range ip.Regions {
				r := &ip.Regions[i]
				if x == r.XMax {
					return r
				}
			}
			return nil
		}
	)
	for _, r := range ip.Regions {
		if r.V != 0 {
			needV = true
		}
	}
	ic.Rho = make([]float64, m)
	ic.U = make([]float64, m)
	ic.P = make([]float64, m)
	if needV {
		ic.V = make([]float64, m)
	}
	for j := 0; j < m; j++ {
		x := xmin + (float64(j)+0.5)*h
		r := regionOf(x)
		if r == nil {
			err = fmt.Errorf("%w: cell center %g not covered by any region",
				FV1D.ErrConfiguration, x)
			return
		}
		ic.Rho[j], ic.U[j], ic.P[j] = r.Rho, r.U, r.P
		if needV {
			ic.V[j] = r.V
		}
	}
	return
}
