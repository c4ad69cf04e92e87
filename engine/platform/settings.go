package platform

// Quality grades the texture detail tier.
type Quality uint8

const (
	QualityMedium Quality = iota
	QualityHigh
	QualityUltra
)

func (q Quality) String() string {
	switch q {
	case QualityUltra:
		return "ultra"
	case QualityHigh:
		return "high"
	}
	return "medium"
}

// Settings is the tuning profile derived from detected hardware. The
// driver names are informational, displayed on the platform scene.
type Settings struct {
	TargetFPS      int
	VSync          bool
	DoubleBuffer   bool
	HardwareAccel  bool
	Multithreaded  bool
	ParticleCap    int
	TextureQuality Quality
	Renderer       string
	AudioDriver    string
	InputDriver    string
}

// Optimize builds the profile for hw: a platform driver table, then
// the performance tier, then ARM64 adjustments, each layer overriding
// the last.
func Optimize(hw HardwareInfo) Settings {
	s := Settings{
		TargetFPS:      60,
		VSync:          true,
		DoubleBuffer:   true,
		HardwareAccel:  true,
		Multithreaded:  true,
		ParticleCap:    1000,
		TextureQuality: QualityHigh,
		Renderer:       "software",
		AudioDriver:    "none",
		InputDriver:    "generic",
	}

	switch hw.OS {
	case Windows:
		s.Renderer = "direct3d"
		s.AudioDriver = "directsound"
		s.InputDriver = "directinput"
	case Linux:
		s.Renderer = "opengl"
		s.AudioDriver = "pulseaudio"
		s.InputDriver = "x11"
	case MacOS:
		s.Renderer = "metal"
		s.AudioDriver = "coreaudio"
		s.InputDriver = "cocoa"
	}

	if hw.HighPerf {
		s.TargetFPS = 120
		s.ParticleCap = 2000
		s.TextureQuality = QualityUltra
		s.Multithreaded = true
	} else {
		s.TargetFPS = 30
		s.ParticleCap = 500
		s.TextureQuality = QualityMedium
		s.Multithreaded = false
	}

	// some ARM64 GPU stacks misreport acceleration support, so derate
	if hw.Arch == ARM64 {
		s.Renderer = "opengl"
		s.HardwareAccel = false
		s.ParticleCap = int(float64(s.ParticleCap) * 0.8)
	}

	return s
}
