package scoring

// Sport identifies the scoring rules a match is played under.
type Sport string

const (
	SportPadel       Sport = "padel"
	SportPickleball  Sport = "pickleball"
	SportPickleball7 Sport = "pickleball-7"
)

// SetScore holds the raw score inputs for a single set, exactly as entered.
// Both sides empty means the set was not played.
type SetScore struct {
	TeamA string `json:"team1"`
	TeamB string `json:"team2"`
}

// Played reports whether both sides of the set were entered.
func (s SetScore) Played() bool {
	return s.TeamA != "" && s.TeamB != ""
}

// MatchScoreForm is the three-set score sheet uploaded after a match.
// Each set is independently optional; they do not have to be contiguous.
type MatchScoreForm struct {
	Set1 SetScore `json:"set1"`
	Set2 SetScore `json:"set2"`
	Set3 SetScore `json:"set3"`
}

// Sets returns the three sets in order.
func (f MatchScoreForm) Sets() [3]SetScore {
	return [3]SetScore{f.Set1, f.Set2, f.Set3}
}

// Result is the outcome of validating a single set. Violations are returned
// as data, never as errors.
type Result struct {
	Valid  bool
	Reason string
}

// ruleset carries the constants needed to validate one set for a sport.
type ruleset struct {
	minToWin int
	winBy    int
	cap      int // 0 means no upper bound
	unit     string
}

var rulesets = map[Sport]ruleset{
	SportPadel:       {minToWin: 6, winBy: 2, cap: 7, unit: "games"},
	SportPickleball:  {minToWin: 11, winBy: 2, unit: "points"},
	SportPickleball7: {minToWin: 7, winBy: 2, unit: "points"},
}

// KnownSport reports whether the sport has a scoring ruleset.
func KnownSport(s Sport) bool {
	_, ok := rulesets[s]
	return ok
}
