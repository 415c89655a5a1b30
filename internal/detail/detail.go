// Package detail is the spec sheet shown for a selected part.
package detail

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/san-kum/teardown/internal/parts"
)

// Spec is one labelled line of a spec sheet.
type Spec struct {
	Key   string
	Value string
}

// Label is the key as the panel shows it, first letter upper-cased.
func (s Spec) Label() string {
	r, size := utf8.DecodeRuneInString(s.Key)
	if r == utf8.RuneError {
		return s.Key
	}
	return string(unicode.ToUpper(r)) + s.Key[size:]
}

type PartDetail struct {
	Name        string
	Specs       []Spec
	Connections []string
}

// Spec returns the value stored under key.
func (d *PartDetail) Spec(key string) (string, bool) {
	for _, s := range d.Specs {
		if s.Key == key {
			return s.Value, true
		}
	}
	return "", false
}

var sheets = map[parts.ID]PartDetail{
	parts.Screen: {
		Name: "Screen",
		Specs: []Spec{
			{"type", "Super Retina XDR OLED"},
			{"size", "6.1 inches"},
			{"resolution", "2532 x 1170 pixels"},
			{"ppi", "460 ppi"},
			{"features", "HDR, True Tone, Wide color (P3)"},
			{"protection", "Ceramic Shield"},
		},
		Connections: []string{"Connected to Motherboard via MIPI DSI interface"},
	},
	parts.Battery: {
		Name: "Battery",
		Specs: []Spec{
			{"capacity", "3240 mAh"},
			{"type", "Li-Ion"},
			{"voltage", "3.81 V"},
			{"wattHours", "12.41 Wh"},
			{"charging", "Fast charging 20W, MagSafe wireless charging 15W, Qi wireless charging 7.5W"},
		},
		Connections: []string{"Connected to Motherboard via battery connector"},
	},
	parts.Motherboard: {
		Name: "Motherboard",
		Specs: []Spec{
			{"chip", "A15 Bionic"},
			{"cpu", "6-core (2 high-performance + 4 high-efficiency)"},
			{"gpu", "5-core Apple-designed GPU"},
			{"neuralEngine", "16-core"},
			{"ram", "6 GB LPDDR4X"},
			{"storage", "128 GB / 256 GB / 512 GB"},
		},
		Connections: []string{"Connected to Screen, Battery, Camera, and Speaker"},
	},
	parts.Camera: {
		Name: "Camera",
		Specs: []Spec{
			{"main", "12 MP, f/1.6, 26mm (wide), 1.7µm, dual pixel PDAF, sensor-shift OIS"},
			{"ultraWide", "12 MP, f/2.4, 13mm, 120˚ (ultrawide)"},
			{"features", "Dual-LED dual-tone flash, HDR (photo/panorama)"},
		},
		Connections: []string{"Connected to Motherboard via MIPI CSI interface"},
	},
	parts.Speaker: {
		Name: "Speaker",
		Specs: []Spec{
			{"type", "Stereo speakers"},
			{"features", "Dolby Atmos, spatial audio"},
		},
		Connections: []string{"Connected to Motherboard via flex cable"},
	},
	parts.Chassis: {
		Name: "Chassis",
		Specs: []Spec{
			{"material", "Aluminum frame with glass front and back"},
			{"waterResistance", "IP68 dust/water resistant (up to 6m for 30 mins)"},
			{"dimensions", "146.7 x 71.5 x 7.7 mm"},
			{"weight", "174 g"},
		},
		Connections: []string{"Houses and protects all internal components"},
	},
}

// Describe returns the sheet for a part name, or nil for names outside the
// registry. The result is a copy.
func Describe(name string) *PartDetail {
	id, ok := parts.Lookup(strings.TrimSpace(name))
	if !ok {
		return nil
	}
	return DescribeID(id)
}

func DescribeID(id parts.ID) *PartDetail {
	sheet, ok := sheets[id]
	if !ok {
		return nil
	}
	return &PartDetail{
		Name:        sheet.Name,
		Specs:       append([]Spec(nil), sheet.Specs...),
		Connections: append([]string(nil), sheet.Connections...),
	}
}
