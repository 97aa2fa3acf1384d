package main

import (
	"errors"
	"testing"
)

func TestMenuLoopReturnsPickerError(t *testing.T) {
	boom := errors.New("no tty")
	played := 0

	err := menuLoop(
		func() (string, error) { return "", boom },
		func(string) error { played++; return nil },
		func(error) {},
	)
	if !errors.Is(err, boom) {
		t.Errorf("menuLoop() = %v, expected %v", err, boom)
	}
	if played != 0 {
		t.Errorf("played %d scenarios, expected 0", played)
	}
}

func TestMenuLoopPlaysUntilQuit(t *testing.T) {
	picks := []string{"arena", "room", ""}
	var played []string
	var reported []error

	err := menuLoop(
		func() (string, error) {
			id := picks[0]
			picks = picks[1:]
			return id, nil
		},
		func(id string) error {
			played = append(played, id)
			if id == "room" {
				return errors.New("render failed")
			}
			return nil
		},
		func(err error) { reported = append(reported, err) },
	)
	if err != nil {
		t.Fatalf("menuLoop() = %v, expected nil", err)
	}
	if len(played) != 2 || played[0] != "arena" || played[1] != "room" {
		t.Errorf("played = %v, expected [arena room]", played)
	}
	if len(reported) != 1 {
		t.Errorf("reported %d errors, expected 1", len(reported))
	}
}
