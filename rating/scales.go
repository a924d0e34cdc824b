package rating

// PermanenceScale rates how well a paint resists fading.
type PermanenceScale struct{}

// TransparencyScale rates how much a paint lets through what is under it.
type TransparencyScale struct{}

var permanenceLevels = []Level{
	{"AA", "Extremely Permanent", 4},
	{"A", "Permanent", 3},
	{"B", "Moderately Durable", 2},
	{"C", "Fugitive", 1},
}

var transparencyLevels = []Level{
	{"O", "Opaque", 1},
	{"SO", "Semi-opaque", 2},
	{"ST", "Semi-transparent", 3},
	{"T", "Transparent", 4},
}

func (PermanenceScale) Name() string { return "Permanence" }
func (PermanenceScale) Levels() []Level { return permanenceLevels }
func (TransparencyScale) Name() string { return "Transparency" }
func (TransparencyScale) Levels() []Level { return transparencyLevels }

type (
	Permanence   = Rating[PermanenceScale]
	Transparency = Rating[TransparencyScale]
)

// Defaults for colours whose ratings are not known.
var (
	DefaultPermanence   = MustParse[PermanenceScale]("B")
	DefaultTransparency = MustParse[TransparencyScale]("O")
)
