package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"chess-evolution/chessmg"
	"chess-evolution/engine"
)

func TestParseSquares(t *testing.T) {
	tests := []struct {
		token string
		want  []chessmg.Square
		ok    bool
	}{
		{"e2", []chessmg.Square{{X: 4, Y: 6}}, true},
		{"a8", []chessmg.Square{{X: 0, Y: 0}}, true},
		{"g1f3", []chessmg.Square{{X: 6, Y: 7}, {X: 5, Y: 5}}, true},
		{"i1", nil, false},
		{"e9", nil, false},
		{"e2e", nil, false},
		{"", nil, false},
	}
	for _, tt := range tests {
		got, ok := parseSquares(tt.token)
		if ok != tt.ok || len(got) != len(tt.want) {
			t.Errorf("%q: got %v %v", tt.token, got, ok)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%q: square %d is %v, want %v", tt.token, i, got[i], tt.want[i])
			}
		}
	}
}

func TestConsoleRead(t *testing.T) {
	var out bytes.Buffer
	c := newConsole(&out)
	go c.read(strings.NewReader("e2 e4\nn zz g1f3\nquit e7"))

	var got []chessmg.Square
	for sq := range c.clicks {
		got = append(got, sq)
	}
	want := []chessmg.Square{{X: 4, Y: 6}, {X: 4, Y: 4}, {X: 6, Y: 7}, {X: 5, Y: 5}}
	if len(got) != len(want) {
		t.Fatalf("clicks %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("clicks %v, want %v", got, want)
		}
	}
	if c.promote() != chessmg.Knight {
		t.Fatalf("promotion choice %v", c.promote())
	}
	if !strings.Contains(out.String(), `unknown input "zz"`) {
		t.Fatalf("bad token not reported: %q", out.String())
	}
}

func TestConsoleGame(t *testing.T) {
	var out bytes.Buffer
	c := newConsole(&out)
	game := engine.NewGame(c)
	c.game = game
	go c.read(strings.NewReader("f2f3 e7e5 g2g4 d8h4"))

	state, err := game.Run(context.Background(), c.human(chessmg.White), c.human(chessmg.Black), 0)
	if err != nil || state != engine.BlackWin {
		t.Fatalf("got %v %v", state, err)
	}
	text := out.String()
	for _, want := range []string{"moves: f2f3 f2f4", "check on e1", "Black win"} {
		if !strings.Contains(text, want) {
			t.Errorf("output lacks %q", want)
		}
	}
}

func TestRunRejectsUnknownMode(t *testing.T) {
	if err := run(context.Background(), "blitz", time.Millisecond, 1); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}
