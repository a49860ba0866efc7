package midi

// Param identifies an application parameter that can be driven from a
// control surface. The set is fixed at build time; adding a parameter
// means adding a constant, its name and its range here.
type Param uint8

const (
	ParamGain Param = iota
	ParamVolume
	ParamSpeed
	ParamLineWidth
	ParamIntensity
	ParamPersistence
	ParamZoom
	ParamDCOffsetX
	ParamDCOffsetY
)

// Params lists every parameter in display order.
var Params = []Param{
	ParamGain,
	ParamVolume,
	ParamSpeed,
	ParamLineWidth,
	ParamIntensity,
	ParamPersistence,
	ParamZoom,
	ParamDCOffsetX,
	ParamDCOffsetY,
}

// Name returns the display name, which is also the persisted form.
func (p Param) Name() string {
	switch p {
	case ParamGain:
		return "Gain"
	case ParamVolume:
		return "Volume"
	case ParamSpeed:
		return "Speed"
	case ParamLineWidth:
		return "Line Width"
	case ParamIntensity:
		return "Intensity"
	case ParamPersistence:
		return "Persistence"
	case ParamZoom:
		return "Zoom"
	case ParamDCOffsetX:
		return "DC Offset X"
	case ParamDCOffsetY:
		return "DC Offset Y"
	default:
		return "Unknown"
	}
}

func (p Param) String() string {
	return p.Name()
}

// Range returns the parameter's (min, max) bounds.
func (p Param) Range() (min, max float32) {
	switch p {
	case ParamGain:
		return 0.1, 10.0
	case ParamVolume:
		return 0.0, 2.0
	case ParamSpeed:
		return 0.25, 2.0
	case ParamLineWidth:
		return 0.5, 5.0
	case ParamIntensity:
		return 0.1, 1.0
	case ParamPersistence:
		return 0.0, 0.99
	case ParamZoom:
		return 0.1, 2.0
	case ParamDCOffsetX:
		return -1.0, 1.0
	case ParamDCOffsetY:
		return -1.0, 1.0
	default:
		return 0, 1
	}
}

// Scale maps a CC value (0-127) linearly onto the parameter's range.
// Scale(0) is min and Scale(127) is max.
func (p Param) Scale(cc uint8) float32 {
	t := float32(cc) / 127.0
	min, max := p.Range()
	return min + t*(max-min)
}

// ParamByName resolves a persisted parameter name. It reports false for
// names from newer or older config files that this build doesn't know.
func ParamByName(name string) (Param, bool) {
	for _, p := range Params {
		if p.Name() == name {
			return p, true
		}
	}
	return 0, false
}
