package models

// Edge colors understood by the presentation layer.
const (
	ColorGreen  = "green"
	ColorRed    = "red"
	ColorYellow = "yellow"
	ColorGold   = "gold"
)

// Highlight is the presentation hint derived from a clip's events and
// outcome. An empty EdgeColor means no handler claimed the clip and the
// caller keeps its default border.
type Highlight struct {
	EdgeColor     string `json:"edgeColor,omitempty"`
	HighlightGold bool   `json:"highlightGold"`
}
