package logic

import (
	"strings"

	"github.com/matchtape/stats-api/internal/models"
)

// colorHandler inspects a clip and either claims the presentation decision
// or declines by returning nil, letting the next handler in the chain try.
// Each handler is a pure function total over its own sport domain.
type colorHandler func(sc *models.Sidecar, base models.Result, baseGold bool) *models.Highlight

// colorChain is the fixed priority order: the type of the last play matters
// for baseball, how the match ended matters for grappling, and everything
// else just wants win/loss/tie.
var colorChain = []colorHandler{
	baseballHittingColor,
	baseballPitchingColor,
	grapplingColor,
	genericOutcomeColor,
}

// ClassifyHighlight runs the chain over a clip plus its precomputed base
// outcome and highlight flag. When no handler claims the clip, the caller
// keeps its default presentation and only the base highlight flag carries
// through.
func ClassifyHighlight(sc *models.Sidecar, base models.Result, baseGold bool) models.Highlight {
	for _, handler := range colorChain {
		if decision := handler(sc, base, baseGold); decision != nil {
			return *decision
		}
	}
	return models.Highlight{HighlightGold: baseGold}
}

func sportString(sc *models.Sidecar) string {
	return strings.ToLower(sc.Sport + ":" + sc.Style)
}

func isBaseballish(sport string) bool {
	return strings.Contains(sport, "baseball") || strings.Contains(sport, "softball")
}

// lastDescribedEvent returns the most recent event carrying a kind, in time
// order.
func lastDescribedEvent(sc *models.Sidecar) *models.Event {
	events := Normalize(sc.Events, sc.HomeSideIsAthlete())
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Key != "" {
			return &events[i]
		}
	}
	return nil
}

// baseballHittingColor classifies a hitting clip by its most recent
// descriptive event. Declines when the sport string indicates pitching.
func baseballHittingColor(sc *models.Sidecar, _ models.Result, _ bool) *models.Highlight {
	sport := sportString(sc)
	if !isBaseballish(sport) || strings.Contains(sport, "pitch") {
		return nil
	}

	last := lastDescribedEvent(sc)
	if last == nil {
		return &models.Highlight{EdgeColor: models.ColorGreen}
	}
	switch strings.ToLower(last.Key) {
	case "homerun", "home_run", "hr":
		return &models.Highlight{EdgeColor: models.ColorGold, HighlightGold: true}
	case "strikeout", "k":
		return &models.Highlight{EdgeColor: models.ColorRed}
	case "walk", "bb":
		return &models.Highlight{EdgeColor: models.ColorYellow}
	default:
		// Any other described contact, or an unclassifiable event on a
		// hitting clip, reads as good.
		return &models.Highlight{EdgeColor: models.ColorGreen}
	}
}

// baseballPitchingColor is the inverse polarity of the hitting handler: a
// strikeout thrown is good, a walk issued or hit allowed is bad. Declines
// unless the sport string indicates pitching.
func baseballPitchingColor(sc *models.Sidecar, _ models.Result, _ bool) *models.Highlight {
	sport := sportString(sc)
	if !isBaseballish(sport) || !strings.Contains(sport, "pitch") {
		return nil
	}

	last := lastDescribedEvent(sc)
	if last == nil {
		return &models.Highlight{EdgeColor: models.ColorGreen}
	}
	switch strings.ToLower(last.Key) {
	case "strikeout", "k":
		return &models.Highlight{EdgeColor: models.ColorGreen}
	case "walk", "bb", "hit", "single", "double", "triple", "homerun", "home_run", "hr":
		return &models.Highlight{EdgeColor: models.ColorRed}
	default:
		return &models.Highlight{EdgeColor: models.ColorGreen}
	}
}

// grapplingColor claims submissions outright and otherwise falls through to
// the generic win/loss/tie coloring.
func grapplingColor(sc *models.Sidecar, _ models.Result, _ bool) *models.Highlight {
	sport := sportString(sc)
	if !strings.Contains(sport, "bjj") && !strings.Contains(sport, "jiu") &&
		!strings.Contains(sport, "grappling") {
		return nil
	}

	athlete := sc.AthleteSide()
	events := Normalize(sc.Events, sc.HomeSideIsAthlete())
	for i := len(events) - 1; i >= 0; i-- {
		key := strings.ToLower(events[i].Key)
		if key != "submission" && key != "sub" && key != "tap" {
			continue
		}
		if events[i].Actor == athlete {
			return &models.Highlight{EdgeColor: models.ColorGreen, HighlightGold: true}
		}
		if events[i].Actor == athlete.Opposite() {
			return &models.Highlight{EdgeColor: models.ColorRed}
		}
	}
	return nil
}

// Sports whose coloring is a straight read of the base outcome.
var genericColorSports = []string{
	"volleyball", "pickleball", "fencing", "wrestling",
	"boxing", "kickboxing", "mma", "muay", "judo", "karate", "taekwondo",
	"bjj", "jiu", "grappling",
}

func genericOutcomeColor(sc *models.Sidecar, base models.Result, baseGold bool) *models.Highlight {
	sport := sportString(sc)
	matched := false
	for _, keyword := range genericColorSports {
		if strings.Contains(sport, keyword) {
			matched = true
			break
		}
	}
	if !matched {
		return nil
	}

	switch base {
	case models.ResultWin:
		return &models.Highlight{EdgeColor: models.ColorGreen, HighlightGold: baseGold}
	case models.ResultLoss:
		return &models.Highlight{EdgeColor: models.ColorRed, HighlightGold: baseGold}
	case models.ResultTie:
		return &models.Highlight{EdgeColor: models.ColorYellow, HighlightGold: baseGold}
	}
	return nil
}
