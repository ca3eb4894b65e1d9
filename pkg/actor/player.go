package actor

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/jwebster45206/d20"
	"github.com/jwebster45206/language-rpg/pkg/catalog"
)

const (
	DefaultLevel = 1
	DefaultMaxHP = 100
	DefaultGold  = 50

	// LevelUpHP is added to max HP on every level up.
	LevelUpHP = 20
	// ExpPerLevel times the current level is the experience needed for the next level.
	ExpPerLevel = 50
)

// actorID names the d20 actor backing every player; player names may be empty.
const actorID = "player"

// Player is the mutable record of one player's progress.
// Current and max HP are held by a d20.Actor; HP never leaves 0..MaxHP.
type Player struct {
	Name            string
	Level           int
	Exp             int
	Gold            int
	EnglishExp      int
	ChineseExp      int
	Inventory       []string
	Location        string
	CompletedQuests map[string]struct{}

	actor *d20.Actor
}

// NewPlayer creates a level 1 player standing at location.
func NewPlayer(name, location string) (*Player, error) {
	p := &Player{
		Name:            name,
		Level:           DefaultLevel,
		Gold:            DefaultGold,
		Inventory:       []string{},
		Location:        location,
		CompletedQuests: make(map[string]struct{}),
	}
	a, err := d20.NewActor(actorID).
		WithHP(DefaultMaxHP).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build actor: %w", err)
	}
	p.actor = a
	return p, nil
}

func (p *Player) HP() int {
	return p.actor.HP()
}

func (p *Player) MaxHP() int {
	return p.actor.MaxHP()
}

// Defeated reports whether the player has no HP left.
func (p *Player) Defeated() bool {
	return p.actor.IsKnockedOut()
}

// TakeDamage reduces HP by n, stopping at 0. It returns the HP lost.
func (p *Player) TakeDamage(n int) int {
	if n <= 0 {
		return 0
	}
	before := p.HP()
	p.actor.SubHP(n)
	return before - p.HP()
}

// Heal increases HP by n, stopping at MaxHP. It returns the HP restored.
func (p *Player) Heal(n int) int {
	if n <= 0 {
		return 0
	}
	before := p.HP()
	p.actor.AddHP(n)
	return p.HP() - before
}

// NextLevelExp is the total experience at which the next level is reached.
func (p *Player) NextLevelExp() int {
	return p.Level * ExpPerLevel
}

// LevelUp raises the level by one, adds LevelUpHP to max HP and fully heals.
func (p *Player) LevelUp() {
	// Max HP only grows, so SetMaxHP cannot reject it.
	_ = p.actor.SetMaxHP(p.MaxHP() + LevelUpHP)
	p.actor.ResetHP()
	p.Level++
}

// AddLanguageExp adds n to the counter for lang.
func (p *Player) AddLanguageExp(lang catalog.Language, n int) {
	switch lang {
	case catalog.English:
		p.EnglishExp += n
	case catalog.Chinese:
		p.ChineseExp += n
	}
}

// AddItem appends an item to the inventory; duplicates are kept.
func (p *Player) AddItem(item string) {
	p.Inventory = append(p.Inventory, item)
}

// Quests returns completed quest IDs in sorted order.
func (p *Player) Quests() []string {
	quests := slices.Collect(maps.Keys(p.CompletedQuests))
	sort.Strings(quests)
	return quests
}
