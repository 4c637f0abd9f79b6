package core

// Color is a terminal color: a hex string ("#eee4da") or an ANSI code ("241").
// The empty Color means the terminal default.
type Color string

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// TileColors is the background/foreground pair for a tile value.
type TileColors struct {
	BG Color
	FG Color
}

// Theme is the palette used to draw the board.
type Theme struct {
	Name      string
	Text      Color
	Muted     Color
	Grid      Color
	EmptyCell Color
	Accent    Color
}

var lightTheme = Theme{
	Name:      ThemeLight,
	Text:      "#776e65",
	Muted:     "#8f7a66",
	Grid:      "#bbada0",
	EmptyCell: "#cdc1b4",
	Accent:    "#edc22e",
}

var darkTheme = Theme{
	Name:      ThemeDark,
	Text:      "#f9f9f9",
	Muted:     "#a5a5a5",
	Grid:      "#3a3a3c",
	EmptyCell: "#48484a",
	Accent:    "#edc22e",
}

var tilePalette = map[int]TileColors{
	2:    {BG: "#eee4da", FG: "#776e65"},
	4:    {BG: "#ede0c8", FG: "#776e65"},
	8:    {BG: "#f2b179", FG: "#f9f6f2"},
	16:   {BG: "#f59563", FG: "#f9f6f2"},
	32:   {BG: "#f67c5f", FG: "#f9f6f2"},
	64:   {BG: "#f65e3b", FG: "#f9f6f2"},
	128:  {BG: "#edcf72", FG: "#f9f6f2"},
	256:  {BG: "#edcc61", FG: "#f9f6f2"},
	512:  {BG: "#edc850", FG: "#f9f6f2"},
	1024: {BG: "#edc53f", FG: "#f9f6f2"},
	2048: {BG: "#edc22e", FG: "#f9f6f2"},
}

var superTile = TileColors{BG: "#3c3a32", FG: "#f9f6f2"}

// ThemeByName returns the named theme, falling back to light.
func ThemeByName(name string) Theme {
	if name == ThemeDark {
		return darkTheme
	}
	return lightTheme
}

// TileStyle returns the colors for a tile value. Values above 2048 share one style.
func (t Theme) TileStyle(value int) TileColors {
	if c, ok := tilePalette[value]; ok {
		return c
	}
	if value == 0 {
		return TileColors{BG: t.EmptyCell, FG: t.Text}
	}
	return superTile
}
