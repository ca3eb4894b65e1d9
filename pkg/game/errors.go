package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDestination is the parent of every failed move.
	ErrInvalidDestination = errors.New("invalid destination")
	ErrNotAdjacent        = fmt.Errorf("%w: not directly reachable", ErrInvalidDestination)
	ErrUnknownLocation    = fmt.Errorf("%w: location does not exist", ErrInvalidDestination)

	ErrNoEnemyAvailable = errors.New("no enemies here")
	ErrUnknownEnemy     = errors.New("enemy not found")

	ErrNoNPCAvailable = errors.New("no one to talk to here")
	ErrUnknownNPC     = errors.New("npc not here")

	ErrUnknownLanguage     = errors.New("unknown language filter")
	ErrNotEnoughVocabulary = errors.New("not enough vocabulary to study")
	ErrNoQuestion          = errors.New("no question to answer")
)

// MoveError reports a move that was refused. Exits lists where the player could go instead.
type MoveError struct {
	Destination string
	Exits       []string
	Err         error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move to %q: %v (exits: %s)", e.Destination, e.Err, strings.Join(e.Exits, ", "))
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// EnemyError reports a battle that could not start.
type EnemyError struct {
	Enemy string
	Err   error
}

func (e *EnemyError) Error() string {
	if e.Enemy == "" {
		return fmt.Sprintf("battle: %v", e.Err)
	}
	return fmt.Sprintf("battle %q: %v", e.Enemy, e.Err)
}

func (e *EnemyError) Unwrap() error {
	return e.Err
}

// NPCError reports a conversation that could not start.
type NPCError struct {
	NPC string
	Err error
}

func (e *NPCError) Error() string {
	if e.NPC == "" {
		return fmt.Sprintf("talk: %v", e.Err)
	}
	return fmt.Sprintf("talk to %q: %v", e.NPC, e.Err)
}

func (e *NPCError) Unwrap() error {
	return e.Err
}
