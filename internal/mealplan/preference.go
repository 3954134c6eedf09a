package mealplan

import (
	"fmt"
	"sort"

	"github.com/pawplan/pawplan-cli/internal/model"
)

const (
	RankByProtein = "protein"
	RankByVeg     = "veg"
)

var preferenceScores = map[string]int{
	model.PreferenceDislike: 0,
	model.PreferenceNeutral: 1,
	model.PreferenceLike:    2,
	model.PreferenceLove:    3,
}

func PreferenceScore(level string) int {
	if score, ok := preferenceScores[level]; ok {
		return score
	}
	return preferenceScores[model.PreferenceNeutral]
}

func IsPreferenceLevel(level string) bool {
	_, ok := preferenceScores[level]
	return ok
}

func PreferenceLevels() []string {
	return []string{
		model.PreferenceDislike,
		model.PreferenceNeutral,
		model.PreferenceLike,
		model.PreferenceLove,
	}
}

// RankPreferences averages taste-log scores per ingredient and sorts
// best-first. Equal means fall back to name order so repeated runs
// agree on the output.
func RankPreferences(entries []model.TasteEntry, field string) ([]model.PreferenceRank, error) {
	var pick func(model.TasteEntry) string
	switch field {
	case RankByProtein:
		pick = func(e model.TasteEntry) string { return e.Protein }
	case RankByVeg:
		pick = func(e model.TasteEntry) string { return e.Veg }
	default:
		return nil, fmt.Errorf("unknown ranking field %q", field)
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	var order []string
	for _, entry := range entries {
		name := pick(entry)
		if name == "" {
			continue
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		sums[name] += PreferenceScore(entry.Preference)
		counts[name]++
	}

	out := make([]model.PreferenceRank, 0, len(order))
	for _, name := range order {
		out = append(out, model.PreferenceRank{
			Name:    name,
			Score:   float64(sums[name]) / float64(counts[name]),
			Entries: counts[name],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
