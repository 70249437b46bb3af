package render

// Theme selects one of the two built-in palettes. It is passed explicitly
// through layout and draw calls; there is no ambient theme state.
type Theme string

// Built-in themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a raw string to a Theme, defaulting to light.
func ParseTheme(raw string) Theme {
	if raw == string(ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

type palette struct {
	Background string
	Text       string
	TextStrong string
	Border     string
	GridLine   string
	HourLine   string
	Connector  string
	RemarkDot  string
	LeaderLine string
}

func paletteFor(theme Theme) palette {
	if theme == ThemeDark {
		return palette{
			Background: "#020617",
			Text:       "#94a3b8",
			TextStrong: "#e2e8f0",
			Border:     "#1e293b",
			GridLine:   "rgba(148,163,184,0.1)",
			HourLine:   "rgba(148,163,184,0.2)",
			Connector:  "#475569",
			RemarkDot:  "#ffffff",
			LeaderLine: "rgba(255,255,255,0.1)",
		}
	}
	return palette{
		Background: "#ffffff",
		Text:       "#475569",
		TextStrong: "#1e293b",
		Border:     "#e2e8f0",
		GridLine:   "rgba(15,23,42,0.05)",
		HourLine:   "rgba(15,23,42,0.15)",
		Connector:  "#94a3b8",
		RemarkDot:  "#000000",
		LeaderLine: "rgba(0,0,0,0.1)",
	}
}
