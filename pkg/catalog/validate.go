package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// Severity grades a validation problem.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// MinStudyWords is the number of easy words drawn by one study session.
const MinStudyWords = 3

// Problem is one finding from Validate.
type Problem struct {
	Severity Severity
	Message  string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Severity, p.Message)
}

// HasErrors reports whether any problem is an error rather than a warning.
func HasErrors(problems []Problem) bool {
	for _, p := range problems {
		if p.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate checks the catalog for structural problems.
// Exits to missing locations, enemies without a battle definition, NPCs without
// dialogue and unknown vocabulary tiers are warnings; the game still runs with them.
func Validate(c *Catalog) []Problem {
	v := &validator{}

	if _, ok := c.Locations[c.StartLocation]; !ok {
		v.errorf("start location %q is not defined", c.StartLocation)
	}

	for _, key := range c.LocationKeys() {
		loc := c.Locations[key]
		if loc.NameEN == "" || loc.NameCN == "" {
			v.errorf("location %q is missing a localized name", key)
		}
		for _, exit := range loc.Connected {
			if _, ok := c.Locations[exit]; !ok {
				v.warnf("location %q connects to undefined location %q", key, exit)
			}
		}
		for _, npc := range loc.NPCs {
			if _, ok := c.NPCs[npc]; !ok {
				v.warnf("location %q lists npc %q with no dialogue", key, npc)
			}
		}
		for _, enemy := range loc.Enemies {
			if _, ok := c.Enemies[enemy]; !ok {
				v.warnf("location %q lists enemy %q with no battle definition", key, enemy)
			}
		}
	}

	enemyNames := make([]string, 0, len(c.Enemies))
	for name := range c.Enemies {
		enemyNames = append(enemyNames, name)
	}
	sort.Strings(enemyNames)
	for _, name := range enemyNames {
		e := c.Enemies[name]
		if e.HP <= 0 {
			v.errorf("enemy %q has non-positive hp %d", name, e.HP)
		}
		if !e.Weakness.Valid() {
			v.errorf("enemy %q has unknown weakness %q", name, e.Weakness)
		}
		if len(e.Questions) == 0 {
			v.errorf("enemy %q has no questions", name)
		}
		for i, q := range e.Questions {
			if q.Answer == "" {
				v.errorf("enemy %q question %d has an empty answer", name, i+1)
			}
			if !q.Language.Valid() {
				v.errorf("enemy %q question %d has unknown language %q", name, i+1, q.Language)
			}
		}
	}

	npcNames := make([]string, 0, len(c.NPCs))
	for name := range c.NPCs {
		npcNames = append(npcNames, name)
	}
	sort.Strings(npcNames)
	for _, name := range npcNames {
		if len(c.NPCs[name].Lines) == 0 {
			v.errorf("npc %q has no lines", name)
		}
	}

	for _, tier := range Tiers {
		if _, ok := c.Vocabulary[tier]; !ok {
			v.errorf("vocabulary tier %q is missing", tier)
		}
	}
	var extra []string
	for tier := range c.Vocabulary {
		if !slices.Contains(Tiers, tier) {
			extra = append(extra, string(tier))
		}
	}
	sort.Strings(extra)
	for _, tier := range extra {
		v.warnf("vocabulary tier %q is not a known tier and is never shown", tier)
	}
	if n := len(c.Vocabulary[Easy]); n < MinStudyWords {
		v.errorf("easy tier has %d entries, study needs at least %d", n, MinStudyWords)
	}

	if len(c.Events) == 0 {
		v.errorf("no explore events defined")
	}
	if len(c.Rewards) == 0 {
		v.errorf("no explore rewards defined")
	}
	for _, r := range c.Rewards {
		switch r.Stat {
		case StatEnglishExp, StatChineseExp, StatHP, StatExp:
		default:
			v.errorf("reward %q has unknown stat %q", r.Item, r.Stat)
		}
	}

	return v.problems
}

type validator struct {
	problems []Problem
}

func (v *validator) errorf(format string, args ...any) {
	v.problems = append(v.problems, Problem{Severity: SeverityError, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) warnf(format string, args ...any) {
	v.problems = append(v.problems, Problem{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
}
