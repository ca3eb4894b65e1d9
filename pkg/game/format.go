package game

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/language-rpg/pkg/actor"
	"github.com/jwebster45206/language-rpg/pkg/catalog"
	"golang.org/x/text/width"
)

const (
	Title     = "語源の旅人 - Language RPG"
	separator = "━━━━━━━━━━━━━━━━"
)

// HelpText lists the commands understood by the interpreter.
const HelpText = `【コマンド】
- explore: 周囲を探索
- study [english|chinese|both]: 言語を勉強
- battle [敵の名前]: モンスターと戦う
- answer [答え]: 問題に答える
- move [場所名]: 移動する
- talk [NPCの名前]: NPCと話す
- status: ステータス確認
- vocab: 単語帳を見る
- help: このヘルプ`

func (w *Welcome) String() string {
	s := w.Status
	var b strings.Builder
	fmt.Fprintf(&b, "🎮 %s 🎮\n\n", Title)
	fmt.Fprintf(&b, "ようこそ、%s！\n", s.Name)
	b.WriteString("あなたは「語源の旅人」として、英語と中国語が交じり合う\n不思議な世界を冒険します。\n\n")
	fmt.Fprintf(&b, "📍 現在の場所: %s\n", s.Location)
	fmt.Fprintf(&b, "❤️ HP: %d/%d\n", s.HP, s.MaxHP)
	fmt.Fprintf(&b, "⭐ Level: %d\n", s.Level)
	fmt.Fprintf(&b, "💰 Gold: %d\n", s.Gold)
	fmt.Fprintf(&b, "🇬🇧 英語経験値: %d\n", s.EnglishExp)
	fmt.Fprintf(&b, "🇨🇳 中国語経験値: %d\n\n", s.ChineseExp)
	b.WriteString(HelpText)
	return b.String()
}

func (l *LevelUp) String() string {
	if l == nil {
		return ""
	}
	return fmt.Sprintf("🎉 LEVEL UP! Lv.%dになった！", l.Level)
}

func (r *ExploreResult) String() string {
	var b strings.Builder
	b.WriteString("🔍 探索結果\n\n")
	b.WriteString(r.Event + "\n\n")
	fmt.Fprintf(&b, "手に入れた: %s\n", r.Reward.Item)
	fmt.Fprintf(&b, "効果: %s\n", r.Reward.Effect())
	if r.LevelUp != nil {
		b.WriteString(r.LevelUp.String() + "\n")
	}
	b.WriteString("\n周囲の情報:\n")
	fmt.Fprintf(&b, "- NPC: %s\n", strings.Join(r.Location.NPCs, ", "))
	fmt.Fprintf(&b, "- 危険: %s\n", strings.Join(r.Location.Enemies, ", "))
	fmt.Fprintf(&b, "- 行ける場所: %s", strings.Join(r.Location.Connected, ", "))
	return b.String()
}

func (r *StudyResult) String() string {
	var b strings.Builder
	b.WriteString("📚 言語学習セッション\n")
	for _, w := range r.Entries {
		b.WriteString("\n" + separator + "\n")
		fmt.Fprintf(&b, "🇯🇵 %s\n", w.JP)
		fmt.Fprintf(&b, "🇬🇧 %s\n", w.EN)
		fmt.Fprintf(&b, "🇨🇳 %s\n", w.CN)
		fmt.Fprintf(&b, "テーマ: %s\n", w.Theme)
		b.WriteString(separator + "\n")
	}
	fmt.Fprintf(&b, "\n✨ 経験値 +%d！", r.ExpGained)
	if r.LevelUp != nil {
		b.WriteString("\n" + r.LevelUp.String())
	}
	return b.String()
}

// RenderEncounter describes the start of a fight and its current question.
func RenderEncounter(enc *actor.Encounter) string {
	var b strings.Builder
	b.WriteString("⚔️ バトル開始！\n\n")
	fmt.Fprintf(&b, "%s が現れた！\n", enc.Enemy)
	fmt.Fprintf(&b, "❤️ 敵HP: %d\n", enc.HP)
	fmt.Fprintf(&b, "弱点: %s\n\n", enc.Weakness)
	b.WriteString("【問題に答えて攻撃！】\n")
	if enc.Question != nil {
		b.WriteString("\n" + RenderQuestion(*enc.Question))
	}
	return b.String()
}

// RenderQuestion shows a prompt and which language it tests.
func RenderQuestion(q catalog.Question) string {
	return fmt.Sprintf("❓ %s\n💡 ヒント: これは%sの問題だ", q.Prompt, q.Language)
}

func (r *AnswerResult) String() string {
	var b strings.Builder
	if r.Correct {
		b.WriteString("✅ 正解！\n\n")
		fmt.Fprintf(&b, "🗡️ %dダメージ与えた！\n", r.Damage)
		fmt.Fprintf(&b, "⭐ 経験値 +%d\n", r.ExpGained)
		fmt.Fprintf(&b, "💰 ゴールド +%d", r.GoldGained)
		if r.LevelUp != nil {
			b.WriteString("\n" + r.LevelUp.String())
		}
	} else {
		b.WriteString("❌ 不正解...\n")
		fmt.Fprintf(&b, "正解は「%s」だった\n\n", r.Expected)
		fmt.Fprintf(&b, "💔 %dダメージ受けた！\n", r.DamageTaken)
		fmt.Fprintf(&b, "残りHP: %d/%d", r.HP, r.MaxHP)
	}
	if r.Enemy != "" {
		fmt.Fprintf(&b, "\n\n%s ❤️ 敵HP: %d/%d", r.Enemy, r.EnemyHP, r.EnemyMaxHP)
	}
	return b.String()
}

func (r *TalkResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "💬 %s", r.NPC)
	if r.Description != "" {
		fmt.Fprintf(&b, "\n%s", r.Description)
	}
	b.WriteString("\n")
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "\n「%s」", line)
	}
	return b.String()
}

func (r *MoveResult) String() string {
	loc := r.Location
	var b strings.Builder
	fmt.Fprintf(&b, "🚶 %sに到着！\n\n", loc.Key)
	fmt.Fprintf(&b, "🇬🇧 %s\n", loc.NameEN)
	fmt.Fprintf(&b, "🇨🇳 %s\n\n", loc.NameCN)
	b.WriteString(loc.Description + "\n\n")
	fmt.Fprintf(&b, "ここにいるNPC: %s\n", strings.Join(loc.NPCs, ", "))
	fmt.Fprintf(&b, "注意すべき敵: %s", strings.Join(loc.Enemies, ", "))
	return b.String()
}

func (s PlayerStatus) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s のステータス\n\n", s.Name)
	fmt.Fprintf(&b, "❤️ HP: %d/%d\n", s.HP, s.MaxHP)
	fmt.Fprintf(&b, "⭐ Level: %d\n", s.Level)
	fmt.Fprintf(&b, "📈 経験値: %d/%d\n", s.Exp, s.NextLevelExp)
	fmt.Fprintf(&b, "💰 Gold: %d\n", s.Gold)
	fmt.Fprintf(&b, "📍 現在地: %s\n\n", s.Location)
	fmt.Fprintf(&b, "🇬🇧 英語経験値: %d\n", s.EnglishExp)
	fmt.Fprintf(&b, "🇨🇳 中国語経験値: %d\n\n", s.ChineseExp)
	b.WriteString("🎒 持ち物:\n")
	if len(s.Inventory) == 0 {
		b.WriteString("- (なし)")
	} else {
		b.WriteString("- " + strings.Join(s.Inventory, "\n- "))
	}
	if s.Defeated {
		b.WriteString("\n\n💀 HPが尽きている... 探索で回復アイテムを探そう")
	}
	return b.String()
}

func (v *VocabularyBook) String() string {
	var b strings.Builder
	b.WriteString("📖 単語帳\n")
	for _, page := range v.Pages {
		fmt.Fprintf(&b, "\n【%s】\n", strings.ToUpper(string(page.Tier)))
		jpWidth := 0
		for _, w := range page.Entries {
			jpWidth = max(jpWidth, displayWidth(w.JP))
		}
		for _, w := range page.Entries {
			fmt.Fprintf(&b, "%s | %s | %s\n", padRight(w.JP, jpWidth), w.EN, w.CN)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// displayWidth counts terminal columns, treating East Asian wide characters as two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func padRight(s string, w int) string {
	if pad := w - displayWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
