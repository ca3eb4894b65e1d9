package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/jwebster45206/language-rpg/pkg/actor"
)

type CommandType string

const (
	CmdExplore CommandType = "explore"
	CmdStudy   CommandType = "study"
	CmdBattle  CommandType = "battle"
	CmdAnswer  CommandType = "answer"
	CmdMove    CommandType = "move"
	CmdTalk    CommandType = "talk"
	CmdStatus  CommandType = "status"
	CmdVocab   CommandType = "vocab"
	CmdHelp    CommandType = "help"
	CmdNone    CommandType = "" // No command, used for fallback
)

var knownCommands = map[string]CommandType{
	"explore":    CmdExplore,
	"e":          CmdExplore,
	"study":      CmdStudy,
	"s":          CmdStudy,
	"battle":     CmdBattle,
	"b":          CmdBattle,
	"answer":     CmdAnswer,
	"a":          CmdAnswer,
	"move":       CmdMove,
	"m":          CmdMove,
	"go":         CmdMove,
	"talk":       CmdTalk,
	"t":          CmdTalk,
	"status":     CmdStatus,
	"st":         CmdStatus,
	"vocab":      CmdVocab,
	"v":          CmdVocab,
	"vocabulary": CmdVocab,
	"help":       CmdHelp,
	"h":          CmdHelp,
	"?":          CmdHelp,
}

// ParseCommand splits input into a command and its argument at the first space of
// any kind, including the full-width space. The command word is case-insensitive;
// the argument keeps its case. Unrecognized input returns CmdNone and an empty argument.
func ParseCommand(input string) (CommandType, string) {
	word, arg := splitCommand(input)
	if word == "" {
		return CmdNone, ""
	}
	cmd, ok := knownCommands[strings.ToLower(word)]
	if !ok {
		return CmdNone, ""
	}
	return cmd, arg
}

func splitCommand(input string) (word, arg string) {
	trimmed := strings.TrimSpace(input)
	i := strings.IndexFunc(trimmed, unicode.IsSpace)
	if i < 0 {
		return trimmed, ""
	}
	return trimmed[:i], strings.TrimSpace(trimmed[i:])
}

// isFullCommand reports whether input starts with a command's full name rather than
// a short alias. While a question is open only full names are commands.
func isFullCommand(input string) bool {
	word, _ := splitCommand(input)
	word = strings.ToLower(word)
	cmd, ok := knownCommands[word]
	return ok && string(cmd) == word
}

// CommandResult is the reply to one line of player input.
type CommandResult struct {
	Handled bool   // False if the input was not understood
	Message string // Text to show the player
	Err     error  // Set when the command was understood but refused
}

// Interpreter drives a session from lines of text. It owns the encounter in progress,
// if any, so answers can be typed without a command word while a question is open.
type Interpreter struct {
	session   *Session
	encounter *actor.Encounter
}

func NewInterpreter(s *Session) *Interpreter {
	return &Interpreter{session: s}
}

// Session returns the session being driven.
func (in *Interpreter) Session() *Session {
	return in.session
}

// Encounter returns the fight in progress, or nil.
func (in *Interpreter) Encounter() *actor.Encounter {
	return in.encounter
}

// AwaitingAnswer reports whether a battle question is open.
func (in *Interpreter) AwaitingAnswer() bool {
	return in.encounter != nil && in.encounter.Question != nil
}

// Handle runs one line of input. While a question is open, anything that does not
// start with a full command name is taken as the answer, so "a" or "go" can be answers.
func (in *Interpreter) Handle(input string) *CommandResult {
	if in.AwaitingAnswer() && strings.TrimSpace(input) != "" && !isFullCommand(input) {
		return in.answer(strings.TrimSpace(input))
	}

	cmd, arg := ParseCommand(input)
	if cmd == CmdNone {
		return &CommandResult{
			Handled: false,
			Message: fmt.Sprintf("「%s」は分からない...\n\n%s", strings.TrimSpace(input), HelpText),
		}
	}

	switch cmd {
	case CmdExplore:
		return handled(in.session.Explore().String())

	case CmdStudy:
		filter, err := ParseLanguageFilter(arg)
		if err != nil {
			return failed(err)
		}
		res, err := in.session.Study(filter)
		if err != nil {
			return failed(err)
		}
		return handled(res.String())

	case CmdBattle:
		return in.battle(arg)

	case CmdAnswer:
		if arg == "" {
			return handled("答えを入力してください: answer [答え]")
		}
		return in.answer(arg)

	case CmdMove:
		if arg == "" {
			loc, _ := in.session.Catalog().Location(in.session.Status().Location)
			return handled("行ける場所: " + strings.Join(loc.Connected, ", "))
		}
		res, err := in.session.Move(arg)
		if err != nil {
			return failed(err)
		}
		in.encounter = nil
		return handled(res.String())

	case CmdTalk:
		res, err := in.session.Talk(arg)
		if err != nil {
			return failed(err)
		}
		return handled(res.String())

	case CmdStatus:
		return handled(in.session.Status().String())

	case CmdVocab:
		return handled(in.session.Vocabulary().String())

	case CmdHelp:
		return handled(HelpText)
	}

	return &CommandResult{Handled: false, Message: HelpText}
}

func (in *Interpreter) battle(enemy string) *CommandResult {
	if enemy == "" && in.encounter != nil && !in.encounter.IsDefeated() {
		q, err := in.session.NextQuestion(in.encounter)
		if err != nil {
			return failed(err)
		}
		return handled(fmt.Sprintf("⚔️ %s ❤️ 敵HP: %d/%d\n\n%s",
			in.encounter.Enemy, in.encounter.HP, in.encounter.MaxHP, RenderQuestion(*q)))
	}

	enc, err := in.session.Battle(enemy)
	if err != nil {
		return failed(err)
	}
	in.encounter = enc
	return handled(RenderEncounter(enc))
}

func (in *Interpreter) answer(text string) *CommandResult {
	res, err := in.session.ResolveAnswer(text, in.encounter)
	if err != nil {
		return failed(err)
	}
	msg := res.String()
	if res.EnemyDefeated {
		msg += fmt.Sprintf("\n\n🏆 %sを倒した！", res.Enemy)
		in.encounter = nil
	} else {
		msg += "\n\n(battle で次の問題)"
	}
	return handled(msg)
}

func handled(msg string) *CommandResult {
	return &CommandResult{Handled: true, Message: msg}
}

func failed(err error) *CommandResult {
	return &CommandResult{Handled: true, Message: DescribeError(err), Err: err}
}

// DescribeError turns a session error into a message for the player.
func DescribeError(err error) string {
	var moveErr *MoveError
	var enemyErr *EnemyError
	var npcErr *NPCError

	switch {
	case errors.As(err, &moveErr) && errors.Is(err, ErrNotAdjacent):
		return fmt.Sprintf("%sには直接行けない...\n行ける場所: %s", moveErr.Destination, strings.Join(moveErr.Exits, ", "))
	case errors.As(err, &moveErr) && errors.Is(err, ErrUnknownLocation):
		return fmt.Sprintf("%sという場所は存在しない...", moveErr.Destination)
	case errors.Is(err, ErrNoEnemyAvailable):
		return "この場所には敵がいないようだ..."
	case errors.As(err, &enemyErr) && errors.Is(err, ErrUnknownEnemy):
		return fmt.Sprintf("%sは見つからなかった...", enemyErr.Enemy)
	case errors.Is(err, ErrNoNPCAvailable):
		return "ここには話せる相手がいない"
	case errors.As(err, &npcErr) && errors.Is(err, ErrUnknownNPC):
		return fmt.Sprintf("%sはここにいない...", npcErr.NPC)
	case errors.Is(err, ErrUnknownLanguage):
		return "勉強する言語は english / chinese / both から選んでください"
	case errors.Is(err, ErrNoQuestion):
		return "答える問題がない... まず battle で敵と戦おう"
	case errors.Is(err, ErrNotEnoughVocabulary):
		return "単語帳の単語が足りない..."
	default:
		return "エラー: " + err.Error()
	}
}
