package scoring

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	reasonInvalidSport = "Invalid game type"
	reasonNotNumeric   = "Scores must be numeric values."
	reasonNegative     = "Scores cannot be negative."
)

func valid() Result {
	return Result{Valid: true}
}

func invalid(reason string) Result {
	return Result{Reason: reason}
}

// ValidateSet checks a single set against the rules of the given sport.
// A set with both sides empty is always valid: it means the set was not
// played. Checks run in a fixed order so the first violation is the one
// reported: numeric, negativity, sport threshold, margin and cap rules.
func ValidateSet(sport Sport, set SetScore) Result {
	if set.TeamA == "" && set.TeamB == "" {
		return valid()
	}

	rules, ok := rulesets[sport]
	if !ok {
		return invalid(reasonInvalidSport)
	}

	a, errA := strconv.Atoi(strings.TrimSpace(set.TeamA))
	b, errB := strconv.Atoi(strings.TrimSpace(set.TeamB))
	if errA != nil || errB != nil {
		return invalid(reasonNotNumeric)
	}
	if a < 0 || b < 0 {
		return invalid(reasonNegative)
	}

	hi, lo := a, b
	if b > a {
		hi, lo = b, a
	}

	if rules.cap > 0 {
		if hi > rules.cap {
			return invalid(fmt.Sprintf("A set cannot go beyond %d %s.", rules.cap, rules.unit))
		}
		if hi == rules.cap && lo == rules.cap {
			return invalid(fmt.Sprintf("A set cannot end %d-%d.", rules.cap, rules.cap))
		}
	}

	if hi < rules.minToWin {
		return invalid(fmt.Sprintf("At least %d %s are required to win a set.", rules.minToWin, rules.unit))
	}

	if hi-lo < rules.winBy {
		// A capped set decided at the cap is the tiebreak exception: 7-5 and
		// 7-6 are legal padel results even with a margin below two.
		if rules.cap > 0 && hi == rules.cap {
			return valid()
		}
		return invalid(fmt.Sprintf("The set must be won by at least %d %s.", rules.winBy, rules.unit))
	}

	return valid()
}

// IsValid reports whether the form can be submitted: at least one set must be
// fully entered and pass validation. Unplayed sets are ignored entirely, so
// an invalid second set does not block a valid first one.
func (f MatchScoreForm) IsValid(sport Sport) bool {
	for _, set := range f.Sets() {
		if set.Played() && ValidateSet(sport, set).Valid {
			return true
		}
	}
	return false
}

// FirstViolation returns the reason the form cannot be submitted. When the
// form is valid it returns ("", false). A form with no played sets at all
// reports that one completed set is required; otherwise the first failing
// set's reason is returned.
func (f MatchScoreForm) FirstViolation(sport Sport) (string, bool) {
	if f.IsValid(sport) {
		return "", false
	}
	for _, set := range f.Sets() {
		if res := ValidateSet(sport, set); !res.Valid {
			return res.Reason, true
		}
	}
	return "At least one completed set is required.", true
}
