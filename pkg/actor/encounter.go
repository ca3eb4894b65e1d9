package actor

import (
	"math/rand/v2"
	"slices"

	"github.com/jwebster45206/language-rpg/pkg/catalog"
)

// Encounter is the state of one fight with an enemy. It is owned by whoever drives
// the fight and passed back into the session with every answer, so damage carries
// over between questions. Nothing here ends a fight; callers check IsDefeated.
type Encounter struct {
	Enemy    string
	HP       int
	MaxHP    int
	Weakness catalog.Language

	// Question is the prompt waiting for an answer, or nil once it has been answered.
	Question *catalog.Question

	questions []catalog.Question
	remaining []catalog.Question
}

// NewEncounter starts a fight with a full-health copy of def.
func NewEncounter(def catalog.EnemyDefinition) *Encounter {
	return &Encounter{
		Enemy:     def.Name,
		HP:        max(def.HP, 0),
		MaxHP:     def.HP,
		Weakness:  def.Weakness,
		questions: slices.Clone(def.Questions),
		remaining: slices.Clone(def.Questions),
	}
}

// Pose picks a question uniformly from those not yet asked and makes it current.
// Once every question has been asked the full list is used again.
func (e *Encounter) Pose(r *rand.Rand) *catalog.Question {
	if len(e.questions) == 0 {
		e.Question = nil
		return nil
	}
	if len(e.remaining) == 0 {
		e.remaining = slices.Clone(e.questions)
	}
	i := r.IntN(len(e.remaining))
	q := e.remaining[i]
	e.remaining = slices.Delete(e.remaining, i, i+1)
	e.Question = &q
	return e.Question
}

// Remaining is the number of questions left before the list is reused.
func (e *Encounter) Remaining() int {
	return len(e.remaining)
}

// TakeDamage reduces the enemy's HP by n. HP cannot go below 0.
func (e *Encounter) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	e.HP -= n
	if e.HP < 0 {
		e.HP = 0
	}
}

// IsDefeated returns true if the enemy's HP is 0 or less.
func (e *Encounter) IsDefeated() bool {
	return e.HP <= 0
}
