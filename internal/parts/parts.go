package parts

import "github.com/go-gl/mathgl/mgl64"

// ID identifies one of the fixed sub-assemblies. The zero value is None.
type ID int

const (
	None ID = iota
	Screen
	Battery
	Motherboard
	Camera
	Speaker
	Chassis
)

// Count is the number of parts in the registry.
const Count = int(Chassis)

var names = [...]string{
	None:        "",
	Screen:      "Screen",
	Battery:     "Battery",
	Motherboard: "Motherboard",
	Camera:      "Camera",
	Speaker:     "Speaker",
	Chassis:     "Chassis",
}

func (id ID) String() string {
	if !id.Valid() {
		return ""
	}
	return names[id]
}

// Valid reports whether id names a registered part. None is not valid.
func (id ID) Valid() bool { return id > None && id <= Chassis }

// Index returns the arena slot for id, or -1 when id is not a part.
func (id ID) Index() int {
	if !id.Valid() {
		return -1
	}
	return int(id) - 1
}

// Part is the static description of one sub-assembly. Positions are in meters.
type Part struct {
	ID              ID
	Name            string
	RestPosition    mgl64.Vec3
	ExplodedOffsetZ float64
	VisualSize      mgl64.Vec3
	LabelAnchor     mgl64.Vec3
	Color           string
	Rounded         bool
}

// TargetZ is where the part rests along the explode axis.
func (p Part) TargetZ(exploded bool) float64 {
	if exploded {
		return p.RestPosition.Z() + p.ExplodedOffsetZ
	}
	return p.RestPosition.Z()
}

// Order matters: it is the draw order for labels and the iteration order of
// every animation pass.
var registry = []Part{
	{
		ID: Screen, Name: "Screen",
		RestPosition:    mgl64.Vec3{0, 0.05, 0.02},
		ExplodedOffsetZ: 0.02,
		VisualSize:      mgl64.Vec3{0.07, 0.15, 0.007},
		LabelAnchor:     mgl64.Vec3{0, 0.08, 0.01},
		Color:           "lightblue",
		Rounded:         true,
	},
	{
		ID: Battery, Name: "Battery",
		RestPosition:    mgl64.Vec3{0, -0.02, 0},
		ExplodedOffsetZ: -0.02,
		VisualSize:      mgl64.Vec3{0.06, 0.11, 0.004},
		LabelAnchor:     mgl64.Vec3{0.035, 0, 0.005},
		Color:           "limegreen",
	},
	{
		ID: Motherboard, Name: "Motherboard",
		RestPosition:    mgl64.Vec3{0, -0.04, 0},
		ExplodedOffsetZ: -0.03,
		VisualSize:      mgl64.Vec3{0.05, 0.1, 0.002},
		LabelAnchor:     mgl64.Vec3{-0.03, 0, 0.005},
		Color:           "orange",
	},
	{
		ID: Camera, Name: "Camera",
		RestPosition: mgl64.Vec3{0.025, 0.06, 0.01},
		VisualSize:   mgl64.Vec3{0.015, 0.015, 0.005},
		LabelAnchor:  mgl64.Vec3{0.01, 0.01, 0.005},
		Color:        "gray",
	},
	{
		ID: Speaker, Name: "Speaker",
		RestPosition: mgl64.Vec3{0, -0.065, 0.01},
		VisualSize:   mgl64.Vec3{0.03, 0.006, 0.006},
		LabelAnchor:  mgl64.Vec3{0, -0.01, 0.005},
		Color:        "darkgray",
	},
	{
		ID: Chassis, Name: "Chassis",
		RestPosition: mgl64.Vec3{0, 0, 0},
		VisualSize:   mgl64.Vec3{0.075, 0.16, 0.008},
		LabelAnchor:  mgl64.Vec3{-0.04, -0.08, 0.005},
		Color:        "silver",
		Rounded:      true,
	},
}

// All returns the registry in its fixed order. The slice is a copy.
func All() []Part {
	out := make([]Part, len(registry))
	copy(out, registry)
	return out
}

func Get(id ID) (Part, bool) {
	i := id.Index()
	if i < 0 {
		return Part{}, false
	}
	return registry[i], true
}

// Lookup resolves an exact, case-sensitive part name.
func Lookup(name string) (ID, bool) {
	for _, p := range registry {
		if p.Name == name {
			return p.ID, true
		}
	}
	return None, false
}

func Names() []string {
	out := make([]string, 0, len(registry))
	for _, p := range registry {
		out = append(out, p.Name)
	}
	return out
}
