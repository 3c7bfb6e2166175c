package constants

// ThemeColor is a selectable profile accent color.
type ThemeColor struct {
	Name string
	Hex  string
}

// ThemeColors is the palette offered in profile settings.
var ThemeColors = []ThemeColor{
	{Name: "Classic Purple", Hex: "#9333ea"},
	{Name: "Soft Rose", Hex: "#fb7185"},
	{Name: "Sage Green", Hex: "#2dd4bf"},
	{Name: "Ocean Blue", Hex: "#3b82f6"},
	{Name: "Sunset Orange", Hex: "#f97316"},
	{Name: "Deep Midnight", Hex: "#1e293b"},
}

const (
	// DefaultThemeColor is used before any profile exists and for
	// male/other profiles at onboarding.
	DefaultThemeColor = "#9333ea"

	// FemaleThemeColor is the onboarding default for female profiles.
	FemaleThemeColor = "#fb7185"
)
