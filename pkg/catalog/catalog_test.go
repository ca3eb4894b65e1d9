package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, "始まりの村", c.StartLocation)
	assert.Len(t, c.Locations, 3)
	assert.Len(t, c.Words(Easy), 16)
	assert.Len(t, c.Words(Medium), 7)
	assert.Len(t, c.Words(Hard), 3)
	assert.Len(t, c.Events, 4)
	assert.Len(t, c.Rewards, 4)

	village, ok := c.Location("始まりの村")
	require.True(t, ok)
	assert.Equal(t, "始まりの村", village.Key)
	assert.Equal(t, "Starting Village", village.NameEN)
	assert.Equal(t, "起始村庄", village.NameCN)
	assert.Equal(t, []string{"英語の森", "漢字の山"}, village.Connected)
	assert.Equal(t, []string{"迷子のスライム"}, village.Enemies)

	goblin, ok := c.Enemy("文法ゴブリン")
	require.True(t, ok)
	assert.Equal(t, "文法ゴブリン", goblin.Name)
	assert.Equal(t, 30, goblin.HP)
	assert.Equal(t, English, goblin.Weakness)
	require.Len(t, goblin.Questions, 2)
	assert.Equal(t, "I am a student", goblin.Questions[0].Answer)
	assert.Equal(t, Chinese, goblin.Questions[1].Language)

	elder, ok := c.NPC("村の長老")
	require.True(t, ok)
	assert.Equal(t, "村の長老", elder.Name)
	require.Len(t, elder.Lines, 2)
	assert.Equal(t, "ようこそ、語源の旅人よ。", elder.Lines[0])

	words := c.Words(Easy)
	assert.Equal(t, "水", words[0].JP)
	assert.Equal(t, "water", words[0].EN)
	assert.Equal(t, Easy, words[0].Tier)
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	words := c.Words(Easy)
	words[0].EN = "changed"
	assert.Equal(t, "water", c.Words(Easy)[0].EN)

	wolf, ok := c.Enemy("単語の狼")
	require.True(t, ok)
	wolf.Questions[0].Answer = "changed"
	again, _ := c.Enemy("単語の狼")
	assert.Equal(t, "water", again.Questions[0].Answer)
}

func TestLocation_ConnectsTo(t *testing.T) {
	forest := Location{Connected: []string{"始まりの村", "文法の洞窟"}}

	assert.True(t, forest.ConnectsTo("始まりの村"))
	assert.True(t, forest.ConnectsTo("文法の洞窟"))
	assert.False(t, forest.ConnectsTo("漢字の山"))
}

func TestReward_Effect(t *testing.T) {
	r := Reward{Item: "回復ポーション", Stat: StatHP, Amount: 20}
	assert.Equal(t, "hp +20", r.Effect())
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`{"start_location":"a","mystery":true}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{
		"start_location": "home",
		"locations": {"home": {"name_en": "Home", "name_cn": "家", "connected": []}},
		"vocabulary": {"easy": [{"jp": "水", "en": "water", "cn": "水 (shuǐ)", "theme": "nature"}]}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "home", c.StartLocation)
	assert.Equal(t, "home", c.Locations["home"].Key)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidate_EmbeddedCatalogHasOnlyWarnings(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	problems := Validate(c)
	assert.False(t, HasErrors(problems), "unexpected errors: %v", problems)

	var messages []string
	for _, p := range problems {
		assert.Equal(t, SeverityWarning, p.Severity)
		messages = append(messages, p.Message)
	}
	joined := strings.Join(messages, "\n")
	assert.Contains(t, joined, `"文法の洞窟"`)
	assert.Contains(t, joined, `"発音の谷"`)
	assert.Contains(t, joined, `"迷子のスライム"`)
	assert.Contains(t, joined, `"難読ドラゴン"`)
	assert.Contains(t, joined, `"四字熟語ゴーレム"`)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		catalog *Catalog
		want    string
	}{
		{
			name:    "missing start location",
			catalog: &Catalog{StartLocation: "nowhere"},
			want:    `start location "nowhere" is not defined`,
		},
		{
			name: "enemy without questions",
			catalog: &Catalog{
				Enemies: map[string]EnemyDefinition{"slime": {HP: 10, Weakness: English}},
			},
			want: `enemy "slime" has no questions`,
		},
		{
			name: "question with unknown language",
			catalog: &Catalog{
				Enemies: map[string]EnemyDefinition{"slime": {
					HP:        10,
					Weakness:  English,
					Questions: []Question{{Prompt: "?", Answer: "a", Language: "french"}},
				}},
			},
			want: `enemy "slime" question 1 has unknown language "french"`,
		},
		{
			name: "easy tier too small",
			catalog: &Catalog{
				Vocabulary: map[Tier][]VocabularyEntry{Easy: {{JP: "水"}}},
			},
			want: "easy tier has 1 entries, study needs at least 3",
		},
		{
			name: "npc without lines",
			catalog: &Catalog{
				NPCs: map[string]NPC{"hermit": {Description: "quiet"}},
			},
			want: `npc "hermit" has no lines`,
		},
		{
			name: "reward with unknown stat",
			catalog: &Catalog{
				Rewards: []Reward{{Item: "gem", Stat: "mana", Amount: 1}},
			},
			want: `reward "gem" has unknown stat "mana"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := Validate(tt.catalog)
			require.True(t, HasErrors(problems))

			found := false
			for _, p := range problems {
				if p.Severity == SeverityError && p.Message == tt.want {
					found = true
				}
			}
			assert.True(t, found, "expected %q in %v", tt.want, problems)
		})
	}
}

func TestValidate_Warnings(t *testing.T) {
	c := &Catalog{
		StartLocation: "village",
		Locations: map[string]Location{
			"village": {NameEN: "Village", NameCN: "村庄", NPCs: []string{"stranger"}},
		},
		Vocabulary: map[Tier][]VocabularyEntry{
			Easy:     {{JP: "水"}, {JP: "火"}, {JP: "木"}},
			Medium:   {},
			Hard:     {},
			"expert": {{JP: "形而上学"}},
		},
		Events:  []string{"something happened"},
		Rewards: []Reward{{Item: "stone", Stat: StatExp, Amount: 5}},
	}

	problems := Validate(c)
	assert.False(t, HasErrors(problems), "unexpected errors: %v", problems)
	assert.Equal(t, []Problem{
		{Severity: SeverityWarning, Message: `location "village" lists npc "stranger" with no dialogue`},
		{Severity: SeverityWarning, Message: `vocabulary tier "expert" is not a known tier and is never shown`},
	}, problems)
}
