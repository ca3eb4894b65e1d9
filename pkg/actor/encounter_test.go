package actor

import (
	"math/rand/v2"
	"testing"

	"github.com/jwebster45206/language-rpg/pkg/catalog"
)

func goblin() catalog.EnemyDefinition {
	return catalog.EnemyDefinition{
		Name:     "文法ゴブリン",
		HP:       30,
		Weakness: catalog.English,
		Questions: []catalog.Question{
			{Prompt: "「私は学生です」の英語は？", Answer: "I am a student", Language: catalog.English},
			{Prompt: "「猫」の中国語は？", Answer: "猫", Language: catalog.Chinese},
		},
	}
}

func TestNewEncounter(t *testing.T) {
	e := NewEncounter(goblin())

	if e.Enemy != "文法ゴブリン" {
		t.Errorf("Enemy = %q", e.Enemy)
	}
	if e.HP != 30 || e.MaxHP != 30 {
		t.Errorf("HP = %d/%d, want 30/30", e.HP, e.MaxHP)
	}
	if e.Weakness != catalog.English {
		t.Errorf("Weakness = %q, want english", e.Weakness)
	}
	if e.Question != nil {
		t.Error("expected no question before Pose")
	}
	if e.Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2", e.Remaining())
	}
}

func TestEncounter_Pose(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	e := NewEncounter(goblin())

	first := e.Pose(r)
	second := e.Pose(r)
	if first == nil || second == nil {
		t.Fatal("expected questions")
	}
	if first.Answer == second.Answer {
		t.Errorf("expected both questions before a repeat, got %q twice", first.Answer)
	}
	if e.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", e.Remaining())
	}

	third := e.Pose(r)
	if third == nil {
		t.Fatal("expected the question list to be reused")
	}
	if e.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1 after refill", e.Remaining())
	}
	if e.Question != third {
		t.Error("expected Pose to set the current question")
	}
}

func TestEncounter_PoseWithoutQuestions(t *testing.T) {
	e := NewEncounter(catalog.EnemyDefinition{Name: "empty", HP: 5})
	if q := e.Pose(rand.New(rand.NewPCG(1, 2))); q != nil {
		t.Errorf("expected nil question, got %+v", q)
	}
}

func TestEncounter_TakeDamage(t *testing.T) {
	t.Run("reduces HP", func(t *testing.T) {
		e := NewEncounter(goblin())
		e.TakeDamage(20)
		if e.HP != 10 {
			t.Errorf("expected HP 10, got %d", e.HP)
		}
		if e.IsDefeated() {
			t.Error("expected enemy to still stand")
		}
	})

	t.Run("stops at zero", func(t *testing.T) {
		e := NewEncounter(goblin())
		e.TakeDamage(45)
		if e.HP != 0 {
			t.Errorf("expected HP 0, got %d", e.HP)
		}
		if !e.IsDefeated() {
			t.Error("expected enemy to be defeated")
		}
	})

	t.Run("ignores negative damage", func(t *testing.T) {
		e := NewEncounter(goblin())
		e.TakeDamage(-5)
		if e.HP != 30 {
			t.Errorf("expected HP 30, got %d", e.HP)
		}
	})
}
