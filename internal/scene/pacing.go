package scene

const (
	DefaultAlpha      = 0.1
	DefaultHoverScale = 1.05
	DefaultCameraNear = 0.5
	DefaultCameraFar  = 0.6
)

// Pacing holds the animation constants shared by parts and camera.
// Alpha must lie in (0, 1); callers validate it before building a scene.
type Pacing struct {
	Alpha      float64
	HoverScale float64
	CameraNear float64
	CameraFar  float64
}

func DefaultPacing() Pacing {
	return Pacing{
		Alpha:      DefaultAlpha,
		HoverScale: DefaultHoverScale,
		CameraNear: DefaultCameraNear,
		CameraFar:  DefaultCameraFar,
	}
}

// Lerp moves a toward b by fraction t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
