package grove

import "fmt"

// SeasonKey selects one of the four built-in season profiles.
type SeasonKey uint8

const (
	SeasonSpring SeasonKey = iota
	SeasonSummer
	SeasonAutumn
	SeasonWinter
)

// String returns the lower-case season name.
func (k SeasonKey) String() string {
	switch k {
	case SeasonSpring:
		return "spring"
	case SeasonSummer:
		return "summer"
	case SeasonAutumn:
		return "autumn"
	case SeasonWinter:
		return "winter"
	default:
		return "unknown"
	}
}

// ParseSeason maps a season name to its key.
func ParseSeason(name string) (SeasonKey, error) {
	switch name {
	case "spring":
		return SeasonSpring, nil
	case "summer":
		return SeasonSummer, nil
	case "autumn":
		return SeasonAutumn, nil
	case "winter":
		return SeasonWinter, nil
	}
	return 0, fmt.Errorf("parse season: unknown season %q", name)
}

// SeasonProfile is the immutable configuration bundle for one season. A Scene
// holds exactly one active profile; season changes swap the whole profile and
// rebuild the scene rather than mutating in place.
type SeasonProfile struct {
	Season SeasonKey

	// Colors. Leaf colors are drawn per leaf between LeafColorMin and
	// LeafColorMax.
	Background   Color
	BranchColor  Color
	GroundColor  Color
	LeafColorMin Color
	LeafColorMax Color
	LeafAlpha    float64

	// Leaf density targets.
	MaxLeaves       int
	MinLeaves       int
	BackfillPerTick int
	LeafRadius      Range
	ScatterRadius   float64

	// Grammar parameters.
	Iterations          int
	AngleDeg            float64
	BaseLength          float64
	LengthFactor        float64
	TrunkLengthBoost    float64
	TrunkThicknessBoost float64

	// Thickness parameters.
	StartThickness float64
	ThicknessDecay float64
	ThicknessFloor float64

	// Ground parameters.
	Ground GroundConfig

	// Per-root randomization ranges, sampled once per root at scene reset.
	RootLengthMult    Range
	RootThicknessMult Range
	RootIterations    IntRange
}

// Profile returns the built-in profile for key. The returned value is a copy;
// callers may not observe shared mutation because there is none.
func Profile(key SeasonKey) SeasonProfile {
	switch key {
	case SeasonSummer:
		return SeasonProfile{
			Season:       SeasonSummer,
			Background:   Color{R: 0.53, G: 0.78, B: 0.92, A: 1},
			BranchColor:  Color{R: 0.27, G: 0.19, B: 0.12, A: 1},
			GroundColor:  Color{R: 0.24, G: 0.48, B: 0.22, A: 1},
			LeafColorMin: Color{R: 0.08, G: 0.42, B: 0.12, A: 1},
			LeafColorMax: Color{R: 0.35, G: 0.68, B: 0.22, A: 1},
			LeafAlpha:    0.85,

			MaxLeaves:       4500,
			MinLeaves:       2600,
			BackfillPerTick: 24,
			LeafRadius:      Range{Min: 3.5, Max: 6},
			ScatterRadius:   26,

			Iterations:          4,
			AngleDeg:            22.5,
			BaseLength:          100,
			LengthFactor:        0.52,
			TrunkLengthBoost:    1.6,
			TrunkThicknessBoost: 1.8,

			StartThickness: 11,
			ThicknessDecay: 0.985,
			ThicknessFloor: 1.2,

			Ground: GroundConfig{
				BaseOffset: 58,
				Amplitude:  86,
				NoiseScale: 0.0042,
				Step:       12,
				Seed:       11,
			},

			RootLengthMult:    Range{Min: 0.85, Max: 1.15},
			RootThicknessMult: Range{Min: 0.8, Max: 1.2},
			RootIterations:    IntRange{Min: 3, Max: 4},
		}
	case SeasonAutumn:
		return SeasonProfile{
			Season:       SeasonAutumn,
			Background:   Color{R: 0.89, G: 0.80, B: 0.62, A: 1},
			BranchColor:  Color{R: 0.32, G: 0.22, B: 0.13, A: 1},
			GroundColor:  Color{R: 0.55, G: 0.40, B: 0.20, A: 1},
			LeafColorMin: Color{R: 0.78, G: 0.33, B: 0.06, A: 1},
			LeafColorMax: Color{R: 0.93, G: 0.67, B: 0.14, A: 1},
			LeafAlpha:    0.9,

			MaxLeaves:       3200,
			MinLeaves:       1700,
			BackfillPerTick: 18,
			LeafRadius:      Range{Min: 3.5, Max: 6.5},
			ScatterRadius:   30,

			Iterations:          4,
			AngleDeg:            24,
			BaseLength:          95,
			LengthFactor:        0.52,
			TrunkLengthBoost:    1.55,
			TrunkThicknessBoost: 1.7,

			StartThickness: 10,
			ThicknessDecay: 0.985,
			ThicknessFloor: 1.2,

			Ground: GroundConfig{
				BaseOffset: 62,
				Amplitude:  92,
				NoiseScale: 0.0038,
				Step:       12,
				Seed:       23,
			},

			RootLengthMult:    Range{Min: 0.8, Max: 1.1},
			RootThicknessMult: Range{Min: 0.8, Max: 1.15},
			RootIterations:    IntRange{Min: 3, Max: 4},
		}
	case SeasonWinter:
		return SeasonProfile{
			Season:       SeasonWinter,
			Background:   Color{R: 0.82, G: 0.87, B: 0.93, A: 1},
			BranchColor:  Color{R: 0.18, G: 0.15, B: 0.14, A: 1},
			GroundColor:  Color{R: 0.93, G: 0.95, B: 0.98, A: 1},
			LeafColorMin: Color{R: 0.88, G: 0.92, B: 0.97, A: 1},
			LeafColorMax: Color{R: 0.97, G: 0.98, B: 1.0, A: 1},
			LeafAlpha:    0.75,

			MaxLeaves:       420,
			MinLeaves:       140,
			BackfillPerTick: 6,
			LeafRadius:      Range{Min: 2.5, Max: 4},
			ScatterRadius:   18,

			Iterations:          2,
			AngleDeg:            28,
			BaseLength:          80,
			LengthFactor:        0.56,
			TrunkLengthBoost:    1.5,
			TrunkThicknessBoost: 1.6,

			StartThickness: 9,
			ThicknessDecay: 0.982,
			ThicknessFloor: 1.0,

			Ground: GroundConfig{
				BaseOffset: 70,
				Amplitude:  100,
				NoiseScale: 0.0035,
				Step:       18,
				Seed:       41,
			},

			RootLengthMult:    Range{Min: 0.9, Max: 1.1},
			RootThicknessMult: Range{Min: 0.85, Max: 1.1},
			RootIterations:    IntRange{Min: 2, Max: 2},
		}
	default: // SeasonSpring
		return SeasonProfile{
			Season:       SeasonSpring,
			Background:   Color{R: 0.78, G: 0.89, B: 0.82, A: 1},
			BranchColor:  Color{R: 0.30, G: 0.22, B: 0.15, A: 1},
			GroundColor:  Color{R: 0.42, G: 0.62, B: 0.32, A: 1},
			LeafColorMin: Color{R: 0.55, G: 0.78, B: 0.35, A: 1},
			LeafColorMax: Color{R: 0.93, G: 0.75, B: 0.85, A: 1},
			LeafAlpha:    0.8,

			MaxLeaves:       3800,
			MinLeaves:       2100,
			BackfillPerTick: 20,
			LeafRadius:      Range{Min: 3, Max: 5.5},
			ScatterRadius:   24,

			Iterations:          3,
			AngleDeg:            25,
			BaseLength:          90,
			LengthFactor:        0.54,
			TrunkLengthBoost:    1.6,
			TrunkThicknessBoost: 1.75,

			StartThickness: 10,
			ThicknessDecay: 0.985,
			ThicknessFloor: 1.2,

			Ground: GroundConfig{
				BaseOffset: 56,
				Amplitude:  80,
				NoiseScale: 0.0045,
				Step:       10,
				Seed:       7,
			},

			RootLengthMult:    Range{Min: 0.85, Max: 1.15},
			RootThicknessMult: Range{Min: 0.8, Max: 1.2},
			RootIterations:    IntRange{Min: 3, Max: 3},
		}
	}
}
