package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/language-rpg/pkg/actor"
	"github.com/jwebster45206/language-rpg/pkg/catalog"
	"golang.org/x/text/cases"
)

// Reward ranges, inclusive.
const (
	StudyExpMin = 5
	StudyExpMax = 15

	AttackDamageMin = 15
	AttackDamageMax = 30
	AnswerExpMin    = 10
	AnswerExpMax    = 20
	AnswerGoldMin   = 5
	AnswerGoldMax   = 15
	// AnswerLanguageExp is added to the question's language counter on a correct answer.
	AnswerLanguageExp = 10

	PenaltyMin = 5
	PenaltyMax = 15

	// VocabularyPageSize is the number of entries shown per tier in the vocabulary book.
	VocabularyPageSize = 5
)

// LanguageFilter selects which language counters a study session feeds.
type LanguageFilter string

const (
	FilterEnglish LanguageFilter = "english"
	FilterChinese LanguageFilter = "chinese"
	FilterBoth    LanguageFilter = "both"
)

// ParseLanguageFilter accepts english, chinese or both. An empty string means both.
func ParseLanguageFilter(s string) (LanguageFilter, error) {
	switch f := LanguageFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterBoth, nil
	case FilterEnglish, FilterChinese, FilterBoth:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
}

func (f LanguageFilter) includes(lang catalog.Language) bool {
	return f == FilterBoth || string(f) == string(lang)
}

// Session holds one player's progress and the static catalog.
// It is not safe for concurrent use; a session has exactly one caller.
type Session struct {
	ID uuid.UUID

	catalog *catalog.Catalog
	player  *actor.Player
	rng     *rand.Rand
	logger  *slog.Logger
}

// NewSession creates a session with a default, unnamed player at the catalog's start location.
// rng may be nil, in which case a time-seeded source is used; pass a seeded source for
// reproducible play. logger may be nil.
func NewSession(c *catalog.Catalog, rng *rand.Rand, logger *slog.Logger) (*Session, error) {
	if c == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	id := uuid.New()
	s := &Session{
		ID:      id,
		catalog: c,
		rng:     rng,
		logger:  logger.With("session_id", id.String()),
	}

	player, err := actor.NewPlayer("", c.StartLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	s.player = player
	return s, nil
}

// Catalog returns the session's static content.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Start replaces the player with a fresh one named name. Any name is accepted, including "".
func (s *Session) Start(name string) (*Welcome, error) {
	player, err := actor.NewPlayer(name, s.catalog.StartLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	s.player = player
	s.logger.Info("session started", "player", name)
	return &Welcome{Status: s.Status()}, nil
}

// Explore draws a random event and a random reward, independently.
// The reward item goes into the inventory and its effect is applied.
func (s *Session) Explore() *ExploreResult {
	loc, _ := s.catalog.Location(s.player.Location)
	res := &ExploreResult{Location: loc}

	if len(s.catalog.Events) > 0 {
		res.Event = s.catalog.Events[s.rng.IntN(len(s.catalog.Events))]
	}
	if len(s.catalog.Rewards) == 0 {
		return res
	}
	res.Reward = s.catalog.Rewards[s.rng.IntN(len(s.catalog.Rewards))]
	s.player.AddItem(res.Reward.Item)

	switch res.Reward.Stat {
	case catalog.StatEnglishExp:
		s.player.AddLanguageExp(catalog.English, res.Reward.Amount)
	case catalog.StatChineseExp:
		s.player.AddLanguageExp(catalog.Chinese, res.Reward.Amount)
	case catalog.StatHP:
		s.player.Heal(res.Reward.Amount)
	case catalog.StatExp:
		s.player.Exp += res.Reward.Amount
		res.LevelUp = s.levelUpCheck()
	}

	s.logger.Debug("explore", "event", res.Event, "item", res.Reward.Item, "effect", res.Reward.Effect())
	return res
}

// Study draws three distinct easy words and grants one experience gain to general
// experience and to the language counters selected by filter. The filter is
// normalized like ParseLanguageFilter, so "English" and " both " are accepted.
func (s *Session) Study(filter LanguageFilter) (*StudyResult, error) {
	parsed, err := ParseLanguageFilter(string(filter))
	if err != nil {
		s.logger.Warn("study rejected", "filter", filter)
		return nil, err
	}
	filter = parsed

	words := s.catalog.Words(catalog.Easy)
	if len(words) < catalog.MinStudyWords {
		return nil, fmt.Errorf("%w: easy tier has %d entries", ErrNotEnoughVocabulary, len(words))
	}

	res := &StudyResult{Filter: filter}
	for _, i := range s.rng.Perm(len(words))[:catalog.MinStudyWords] {
		res.Entries = append(res.Entries, words[i])
	}

	res.ExpGained = s.between(StudyExpMin, StudyExpMax)
	for _, lang := range []catalog.Language{catalog.English, catalog.Chinese} {
		if filter.includes(lang) {
			s.player.AddLanguageExp(lang, res.ExpGained)
		}
	}
	s.player.Exp += res.ExpGained
	res.LevelUp = s.levelUpCheck()

	s.logger.Debug("study", "filter", filter, "exp", res.ExpGained)
	return res, nil
}

// levelUpCheck raises the level once when experience has reached level*50.
// A gain that crosses two thresholds still only yields one level per check;
// the next gain picks up the remainder.
func (s *Session) levelUpCheck() *LevelUp {
	if s.player.Exp < s.player.NextLevelExp() {
		return nil
	}
	s.player.LevelUp()
	s.logger.Info("level up", "level", s.player.Level, "max_hp", s.player.MaxHP())
	return &LevelUp{Level: s.player.Level, MaxHP: s.player.MaxHP()}
}

// Battle starts an encounter with enemyName, or with a random enemy at the current
// location when enemyName is empty. The returned encounter already has a question posed.
// The player is not changed.
func (s *Session) Battle(enemyName string) (*actor.Encounter, error) {
	if enemyName == "" {
		loc, _ := s.catalog.Location(s.player.Location)
		if len(loc.Enemies) == 0 {
			s.logger.Warn("battle rejected", "location", s.player.Location, "reason", ErrNoEnemyAvailable)
			return nil, &EnemyError{Err: ErrNoEnemyAvailable}
		}
		enemyName = loc.Enemies[s.rng.IntN(len(loc.Enemies))]
	}

	def, ok := s.catalog.Enemy(enemyName)
	if !ok {
		s.logger.Warn("battle rejected", "enemy", enemyName, "reason", ErrUnknownEnemy)
		return nil, &EnemyError{Enemy: enemyName, Err: ErrUnknownEnemy}
	}

	enc := actor.NewEncounter(def)
	enc.Pose(s.rng)
	s.logger.Debug("battle", "enemy", enc.Enemy, "hp", enc.HP)
	return enc, nil
}

// NextQuestion poses another question from an ongoing encounter.
func (s *Session) NextQuestion(enc *actor.Encounter) (*catalog.Question, error) {
	if enc == nil {
		return nil, ErrNoQuestion
	}
	q := enc.Pose(s.rng)
	if q == nil {
		return nil, fmt.Errorf("%w: %s has no questions", ErrNoQuestion, enc.Enemy)
	}
	return q, nil
}

// ResolveAnswer checks answer against the encounter's current question and applies
// the outcome. On a correct answer the damage is taken off the encounter's HP.
// The question is consumed either way.
func (s *Session) ResolveAnswer(answer string, enc *actor.Encounter) (*AnswerResult, error) {
	if enc == nil || enc.Question == nil {
		return nil, ErrNoQuestion
	}
	res := s.Answer(answer, *enc.Question)
	enc.Question = nil
	if res.Correct {
		enc.TakeDamage(res.Damage)
	}
	res.Enemy = enc.Enemy
	res.EnemyHP = enc.HP
	res.EnemyMaxHP = enc.MaxHP
	res.EnemyDefeated = enc.IsDefeated()
	return res, nil
}

// Answer checks answer against q, ignoring case and surrounding whitespace.
// A correct answer rolls damage (informational only), experience and gold;
// a wrong one costs HP, which stops at zero.
func (s *Session) Answer(answer string, q catalog.Question) *AnswerResult {
	res := &AnswerResult{Question: q, Expected: q.Answer}

	if !matchAnswer(answer, q.Answer) {
		penalty := s.between(PenaltyMin, PenaltyMax)
		lost := s.player.TakeDamage(penalty)
		res.DamageTaken = lost
		res.HP = s.player.HP()
		res.MaxHP = s.player.MaxHP()
		s.logger.Debug("wrong answer", "hp_lost", lost, "hp", res.HP)
		return res
	}

	res.Correct = true
	res.Damage = s.between(AttackDamageMin, AttackDamageMax)
	res.ExpGained = s.between(AnswerExpMin, AnswerExpMax)
	res.GoldGained = s.between(AnswerGoldMin, AnswerGoldMax)

	s.player.Exp += res.ExpGained
	s.player.Gold += res.GoldGained
	lang := q.Language
	if lang != catalog.English {
		lang = catalog.Chinese
	}
	s.player.AddLanguageExp(lang, AnswerLanguageExp)
	res.LanguageExp = AnswerLanguageExp
	res.Language = lang

	res.LevelUp = s.levelUpCheck()
	res.HP = s.player.HP()
	res.MaxHP = s.player.MaxHP()

	s.logger.Debug("correct answer", "damage", res.Damage, "exp", res.ExpGained, "gold", res.GoldGained)
	return res
}

// Move travels to destination along one of the current location's connections.
// Reachability is checked before existence, so an exit that is not listed is always
// reported as unreachable.
func (s *Session) Move(destination string) (*MoveResult, error) {
	current, _ := s.catalog.Location(s.player.Location)

	if !current.ConnectsTo(destination) {
		s.logger.Warn("move rejected", "from", s.player.Location, "to", destination, "reason", ErrNotAdjacent)
		return nil, &MoveError{Destination: destination, Exits: slices.Clone(current.Connected), Err: ErrNotAdjacent}
	}

	loc, ok := s.catalog.Location(destination)
	if !ok {
		s.logger.Warn("move rejected", "from", s.player.Location, "to", destination, "reason", ErrUnknownLocation)
		return nil, &MoveError{Destination: destination, Exits: slices.Clone(current.Connected), Err: ErrUnknownLocation}
	}

	s.player.Location = destination
	s.logger.Debug("move", "location", destination)
	return &MoveResult{Location: loc}, nil
}

// DefaultGreeting is spoken by an NPC that has no dialogue in the catalog.
const DefaultGreeting = "こんにちは、旅人さん。"

// Talk speaks with npcName, or with the first NPC at the current location when
// npcName is empty. Only NPCs listed at the current location can be talked to.
// The player is not changed.
func (s *Session) Talk(npcName string) (*TalkResult, error) {
	loc, _ := s.catalog.Location(s.player.Location)
	if len(loc.NPCs) == 0 {
		s.logger.Warn("talk rejected", "location", s.player.Location, "reason", ErrNoNPCAvailable)
		return nil, &NPCError{Err: ErrNoNPCAvailable}
	}
	if npcName == "" {
		npcName = loc.NPCs[0]
	}
	if !slices.Contains(loc.NPCs, npcName) {
		s.logger.Warn("talk rejected", "npc", npcName, "location", s.player.Location, "reason", ErrUnknownNPC)
		return nil, &NPCError{NPC: npcName, Err: ErrUnknownNPC}
	}

	res := &TalkResult{NPC: npcName, Lines: []string{DefaultGreeting}}
	if npc, ok := s.catalog.NPC(npcName); ok {
		res.Description = npc.Description
		res.Lines = npc.Lines
	}
	s.logger.Debug("talk", "npc", npcName)
	return res, nil
}

// Status returns a snapshot of the player.
func (s *Session) Status() PlayerStatus {
	p := s.player
	return PlayerStatus{
		Name:            p.Name,
		Level:           p.Level,
		Exp:             p.Exp,
		NextLevelExp:    p.NextLevelExp(),
		HP:              p.HP(),
		MaxHP:           p.MaxHP(),
		Gold:            p.Gold,
		EnglishExp:      p.EnglishExp,
		ChineseExp:      p.ChineseExp,
		Inventory:       slices.Clone(p.Inventory),
		Location:        p.Location,
		CompletedQuests: p.Quests(),
		Defeated:        p.Defeated(),
	}
}

// Vocabulary returns the first entries of every tier in catalog order.
func (s *Session) Vocabulary() *VocabularyBook {
	book := &VocabularyBook{}
	for _, tier := range catalog.Tiers {
		words := s.catalog.Words(tier)
		if len(words) > VocabularyPageSize {
			words = words[:VocabularyPageSize]
		}
		book.Pages = append(book.Pages, VocabularyPage{Tier: tier, Entries: words})
	}
	return book
}

// between returns a uniform integer in [lo, hi].
func (s *Session) between(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

func matchAnswer(submitted, expected string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(submitted)) == fold.String(strings.TrimSpace(expected))
}
