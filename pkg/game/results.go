package game

import (
	"github.com/jwebster45206/language-rpg/pkg/catalog"
)

// PlayerStatus is a read-only snapshot of the player.
type PlayerStatus struct {
	Name            string   `json:"name"`
	Level           int      `json:"level"`
	Exp             int      `json:"exp"`
	NextLevelExp    int      `json:"next_level_exp"`
	HP              int      `json:"hp"`
	MaxHP           int      `json:"max_hp"`
	Gold            int      `json:"gold"`
	EnglishExp      int      `json:"english_exp"`
	ChineseExp      int      `json:"chinese_exp"`
	Inventory       []string `json:"inventory"`
	Location        string   `json:"current_location"`
	CompletedQuests []string `json:"completed_quests"`
	Defeated        bool     `json:"defeated,omitempty"` // HP reached zero
}

// Welcome is returned by Start.
type Welcome struct {
	Status PlayerStatus
}

// LevelUp describes a level gained during an operation.
type LevelUp struct {
	Level int
	MaxHP int
}

type ExploreResult struct {
	Event    string
	Reward   catalog.Reward
	Location catalog.Location
	LevelUp  *LevelUp
}

type StudyResult struct {
	Entries   []catalog.VocabularyEntry
	ExpGained int
	Filter    LanguageFilter
	LevelUp   *LevelUp
}

// AnswerResult is the outcome of one answer. Damage is what the player dealt;
// DamageTaken is the HP the player lost.
type AnswerResult struct {
	Question catalog.Question
	Correct  bool
	Expected string

	Damage      int
	ExpGained   int
	GoldGained  int
	LanguageExp int
	Language    catalog.Language
	LevelUp     *LevelUp

	DamageTaken int
	HP          int
	MaxHP       int

	// Set when the answer was given within an encounter.
	Enemy         string
	EnemyHP       int
	EnemyMaxHP    int
	EnemyDefeated bool
}

type TalkResult struct {
	NPC         string
	Description string
	Lines       []string
}

type MoveResult struct {
	Location catalog.Location
}

type VocabularyPage struct {
	Tier    catalog.Tier
	Entries []catalog.VocabularyEntry
}

type VocabularyBook struct {
	Pages []VocabularyPage
}
