package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sort"
)

//go:embed data/catalog.json
var embeddedFS embed.FS

const embeddedPath = "data/catalog.json"

// Language tags a question, an enemy weakness, or an experience counter.
type Language string

const (
	English Language = "english"
	Chinese Language = "chinese"
)

// Valid reports whether l is one of the known language tags.
func (l Language) Valid() bool {
	return l == English || l == Chinese
}

// Tier is a vocabulary difficulty bucket.
type Tier string

const (
	Easy   Tier = "easy"
	Medium Tier = "medium"
	Hard   Tier = "hard"
)

// Tiers lists the difficulty buckets in display order.
var Tiers = []Tier{Easy, Medium, Hard}

// Stat names the player counter an explore reward changes.
type Stat string

const (
	StatEnglishExp Stat = "english_exp"
	StatChineseExp Stat = "chinese_exp"
	StatHP         Stat = "hp"
	StatExp        Stat = "exp"
)

// Location is a place in the game world. Connected holds the keys reachable in one move.
type Location struct {
	Key         string   `json:"-"` // Also the key in the map.
	NameEN      string   `json:"name_en"`
	NameCN      string   `json:"name_cn"`
	Description string   `json:"description"`
	NPCs        []string `json:"npcs"`
	Enemies     []string `json:"enemies"`
	Connected   []string `json:"connected"`
}

// ConnectsTo reports whether key is directly reachable from l.
func (l Location) ConnectsTo(key string) bool {
	return slices.Contains(l.Connected, key)
}

// VocabularyEntry is one word in the vocabulary book.
type VocabularyEntry struct {
	JP    string `json:"jp"`
	EN    string `json:"en"`
	CN    string `json:"cn"` // Includes pinyin, e.g. "水 (shuǐ)"
	Theme string `json:"theme"`
	Tier  Tier   `json:"-"`
}

// Question is a single quiz prompt asked during a battle.
type Question struct {
	Prompt   string   `json:"q"`
	Answer   string   `json:"a"`
	Language Language `json:"type"`
}

// EnemyDefinition is the static template for an enemy that can be fought.
type EnemyDefinition struct {
	Name      string     `json:"-"`
	HP        int        `json:"hp"`
	Weakness  Language   `json:"weakness"`
	Questions []Question `json:"questions"`
}

// Reward is an item found while exploring, along with the counter it raises.
type Reward struct {
	Item   string `json:"item"`
	Stat   Stat   `json:"stat"`
	Amount int    `json:"amount"`
}

// Effect renders the reward's numeric effect, e.g. "english_exp +10".
func (r Reward) Effect() string {
	return fmt.Sprintf("%s +%d", r.Stat, r.Amount)
}

// NPC is a character that can be talked to. Lines are spoken in order.
type NPC struct {
	Name        string   `json:"-"`
	Description string   `json:"description"`
	Lines       []string `json:"lines"`
}

// Catalog is the static content of the game. It is loaded once and never mutated;
// accessors hand out copies of slices.
type Catalog struct {
	StartLocation string                     `json:"start_location"`
	Locations     map[string]Location        `json:"locations"`
	Vocabulary    map[Tier][]VocabularyEntry `json:"vocabulary"`
	Enemies       map[string]EnemyDefinition `json:"battles"`
	NPCs          map[string]NPC             `json:"npcs"`
	Events        []string                   `json:"events"`
	Rewards       []Reward                   `json:"rewards"`
}

// LoadEmbedded parses the catalog shipped with the binary.
func LoadEmbedded() (*Catalog, error) {
	data, err := embeddedFS.ReadFile(embeddedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog: %w", err)
	}
	return Parse(data)
}

// LoadFile parses a catalog from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog strictly; unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	for key, loc := range c.Locations {
		loc.Key = key
		c.Locations[key] = loc
	}
	for tier, entries := range c.Vocabulary {
		for i := range entries {
			entries[i].Tier = tier
		}
	}
	for name, enemy := range c.Enemies {
		enemy.Name = name
		c.Enemies[name] = enemy
	}
	for name, npc := range c.NPCs {
		npc.Name = name
		c.NPCs[name] = npc
	}
	return &c, nil
}

// Location returns the location stored under key.
func (c *Catalog) Location(key string) (Location, bool) {
	loc, ok := c.Locations[key]
	return loc, ok
}

// LocationKeys returns every location key in sorted order.
func (c *Catalog) LocationKeys() []string {
	keys := make([]string, 0, len(c.Locations))
	for k := range c.Locations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Enemy returns the battle definition for name.
func (c *Catalog) Enemy(name string) (EnemyDefinition, bool) {
	e, ok := c.Enemies[name]
	if !ok {
		return EnemyDefinition{}, false
	}
	e.Questions = slices.Clone(e.Questions)
	return e, true
}

// NPC returns the dialogue definition for name.
func (c *Catalog) NPC(name string) (NPC, bool) {
	n, ok := c.NPCs[name]
	if !ok {
		return NPC{}, false
	}
	n.Lines = slices.Clone(n.Lines)
	return n, true
}

// Words returns a copy of a tier's entries in catalog order.
func (c *Catalog) Words(t Tier) []VocabularyEntry {
	return slices.Clone(c.Vocabulary[t])
}
