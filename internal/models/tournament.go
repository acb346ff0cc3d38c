package models

import "time"

// Prize tiers, keyed into Tournament.Prizes.
const (
	PrizeFirst  = "1st"
	PrizeSecond = "2nd"
	PrizeThird  = "3rd"
	PrizeTop10  = "top_10"
)

// Tournament is a static seasonal definition. The four windows partition
// the calendar with no gaps or overlaps.
type Tournament struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Months  []time.Month   `json:"months"`
	Scoring ScoringMode    `json:"scoring"`
	Prizes  map[string]int `json:"prizes"`
}

var Tournaments = []Tournament{
	{
		ID:      "spring_sprint",
		Title:   "Spring Sprint",
		Months:  []time.Month{time.March, time.April, time.May},
		Scoring: ScoringTraining,
		Prizes:  map[string]int{PrizeFirst: 500, PrizeSecond: 300, PrizeThird: 200, PrizeTop10: 50},
	},
	{
		ID:      "summer_showdown",
		Title:   "Summer Showdown",
		Months:  []time.Month{time.June, time.July, time.August},
		Scoring: ScoringPet,
		Prizes:  map[string]int{PrizeFirst: 500, PrizeSecond: 300, PrizeThird: 200, PrizeTop10: 50},
	},
	{
		ID:      "autumn_run",
		Title:   "Autumn Run",
		Months:  []time.Month{time.September, time.October, time.November},
		Scoring: ScoringAchievements,
		Prizes:  map[string]int{PrizeFirst: 600, PrizeSecond: 350, PrizeThird: 250, PrizeTop10: 60},
	},
	{
		ID:      "winter_cup",
		Title:   "Winter Cup",
		Months:  []time.Month{time.December, time.January, time.February},
		Scoring: ScoringOverall,
		Prizes:  map[string]int{PrizeFirst: 800, PrizeSecond: 500, PrizeThird: 300, PrizeTop10: 100},
	},
}

// InMonth reports whether the tournament window covers the given month.
func (t Tournament) InMonth(month time.Month) bool {
	for _, m := range t.Months {
		if m == month {
			return true
		}
	}
	return false
}

type TournamentView struct {
	Active    bool               `json:"active"`
	ID        string             `json:"id,omitempty"`
	Title     string             `json:"title,omitempty"`
	Scoring   ScoringMode        `json:"scoring,omitempty"`
	Months    []time.Month       `json:"months,omitempty"`
	Prizes    map[string]int     `json:"prizes,omitempty"`
	Standings []*LeaderboardItem `json:"standings,omitempty"`
}
