package game

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jwebster45206/language-rpg/pkg/actor"
	"github.com/jwebster45206/language-rpg/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcome_String(t *testing.T) {
	s := newTestSession(t, nil, 1)
	w, err := s.Start("Tester")
	require.NoError(t, err)

	got := w.String()
	assert.Contains(t, got, "ようこそ、Tester！")
	assert.Contains(t, got, "📍 現在の場所: 始まりの村")
	assert.Contains(t, got, "❤️ HP: 100/100")
	assert.Contains(t, got, "💰 Gold: 50")
	assert.Contains(t, got, "- explore: 周囲を探索")
}

func TestPlayerStatus_String(t *testing.T) {
	t.Run("empty inventory", func(t *testing.T) {
		st := PlayerStatus{Name: "Tester", Level: 1, HP: 100, MaxHP: 100, NextLevelExp: 50}
		got := st.String()
		assert.Contains(t, got, "📈 経験値: 0/50")
		assert.Contains(t, got, "- (なし)")
		assert.NotContains(t, got, "💀")
	})

	t.Run("items and defeat", func(t *testing.T) {
		st := PlayerStatus{Name: "Tester", Inventory: []string{"言語の石", "言語の石"}, Defeated: true}
		got := st.String()
		assert.Contains(t, got, "- 言語の石\n- 言語の石")
		assert.Contains(t, got, "💀")
	})
}

func TestVocabularyBook_StringAlignsColumns(t *testing.T) {
	book := &VocabularyBook{Pages: []VocabularyPage{{
		Tier: catalog.Easy,
		Entries: []catalog.VocabularyEntry{
			{JP: "水", EN: "water", CN: "水 (shuǐ)"},
			{JP: "食べる", EN: "eat", CN: "吃 (chī)"},
		},
	}}}

	got := book.String()
	assert.Contains(t, got, "【EASY】")
	assert.Contains(t, got, "水     | water | 水 (shuǐ)")
	assert.Contains(t, got, "食べる | eat | 吃 (chī)")
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 5, displayWidth("water"))
	assert.Equal(t, 2, displayWidth("水"))
	assert.Equal(t, 6, displayWidth("食べる"))
	assert.Equal(t, "水    ", padRight("水", 6))
	assert.Equal(t, "water", padRight("water", 3))
}

func TestRenderEncounter(t *testing.T) {
	enc := actor.NewEncounter(catalog.EnemyDefinition{
		Name:     "単語の狼",
		HP:       40,
		Weakness: catalog.Chinese,
		Questions: []catalog.Question{
			{Prompt: "「水」の英語は？", Answer: "water", Language: catalog.English},
		},
	})
	enc.Pose(rand.New(rand.NewPCG(1, 2)))

	got := RenderEncounter(enc)
	assert.Contains(t, got, "単語の狼 が現れた！")
	assert.Contains(t, got, "❤️ 敵HP: 40")
	assert.Contains(t, got, "弱点: chinese")
	assert.Contains(t, got, "❓ 「水」の英語は？")
	assert.Contains(t, got, "💡 ヒント: これはenglishの問題だ")
	assert.False(t, strings.Contains(got, "water"), "the answer must not be shown")
}

func TestAnswerResult_String(t *testing.T) {
	correct := &AnswerResult{Correct: true, Damage: 20, ExpGained: 12, GoldGained: 7, LevelUp: &LevelUp{Level: 2}}
	got := correct.String()
	assert.Contains(t, got, "🗡️ 20ダメージ与えた！")
	assert.Contains(t, got, "🎉 LEVEL UP! Lv.2になった！")

	wrong := &AnswerResult{Expected: "water", DamageTaken: 9, HP: 91, MaxHP: 100, Enemy: "単語の狼", EnemyHP: 40, EnemyMaxHP: 40}
	got = wrong.String()
	assert.Contains(t, got, "正解は「water」だった")
	assert.Contains(t, got, "残りHP: 91/100")
	assert.Contains(t, got, "単語の狼 ❤️ 敵HP: 40/40")
}
