package logic

import (
	"strings"

	"github.com/matchtape/stats-api/internal/models"
)

// SportKey canonicalizes a sport/style pair to the "sport:style" key used
// by the reducer registry and the color chain. Historical sidecars sometimes
// carry the combined "sport:style" string in the sport field; that form is
// parsed here so no other code ever re-parses raw sport strings.
func SportKey(sport, style string) string {
	sport = strings.ToLower(strings.TrimSpace(sport))
	style = strings.ToLower(strings.TrimSpace(style))

	if i := strings.Index(sport, ":"); i >= 0 {
		if style == "" {
			style = sport[i+1:]
		}
		sport = sport[:i]
	}
	if sport == "" {
		sport = "unknown"
	}
	if style == "" {
		style = "default"
	}
	return sport + ":" + style
}

// SportKeyFromSidecar is the single entry point for deriving a clip's
// canonical sport key.
func SportKeyFromSidecar(sc *models.Sidecar) string {
	return SportKey(sc.Sport, sc.Style)
}
