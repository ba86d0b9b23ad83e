package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"chess-evolution/chessmg"
	"chess-evolution/engine"
)

var promotionLetters = map[string]chessmg.Kind{
	"q": chessmg.Queen,
	"r": chessmg.Rook,
	"b": chessmg.Bishop,
	"n": chessmg.Knight,
}

// console is the text front end: it turns typed squares into clicks and
// prints the board, move hints and outcomes.
type console struct {
	out       io.Writer
	game      *engine.Game
	clicks    chan chessmg.Square
	promotion atomic.Int32
}

func newConsole(out io.Writer) *console {
	c := &console{out: out, clicks: make(chan chessmg.Square)}
	c.promotion.Store(int32(chessmg.Queen))
	return c
}

func (c *console) human(color chessmg.Color) *engine.Human {
	h := engine.NewHuman(color, c.clicks)
	h.Promote = c.promote
	return h
}

func (c *console) promote() chessmg.Kind { return chessmg.Kind(c.promotion.Load()) }

// read feeds squares typed as "e2", "e4" or "e2e4" to the human player. A
// lone q, r, b or n picks the piece for later promotions.
func (c *console) read(r io.Reader) {
	defer close(c.clicks)
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		token := strings.ToLower(scanner.Text())
		if token == "quit" {
			return
		}
		if kind, ok := promotionLetters[token]; ok {
			c.promotion.Store(int32(kind))
			fmt.Fprintf(c.out, "promoting to %v\n", kind)
			continue
		}
		squares, ok := parseSquares(token)
		if !ok {
			fmt.Fprintf(c.out, "unknown input %q\n", token)
			continue
		}
		for _, sq := range squares {
			c.clicks <- sq
		}
	}
}

func parseSquares(token string) ([]chessmg.Square, bool) {
	if len(token) != 2 && len(token) != 4 {
		return nil, false
	}
	var res []chessmg.Square
	for i := 0; i < len(token); i += 2 {
		sq, ok := parseSquare(token[i : i+2])
		if !ok {
			return nil, false
		}
		res = append(res, sq)
	}
	return res, true
}

func parseSquare(name string) (chessmg.Square, bool) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return chessmg.Square{}, false
	}
	return chessmg.Square{X: int(name[0] - 'a'), Y: 7 - int(name[1]-'1')}, true
}

func (c *console) ShowMoves(moves []chessmg.Move, check *chessmg.Square) {
	if c.game != nil {
		fmt.Fprint(c.out, c.game.Board)
	}
	if len(moves) > 0 {
		names := make([]string, len(moves))
		for i, m := range moves {
			names[i] = m.String()
		}
		fmt.Fprintf(c.out, "moves: %s\n", strings.Join(names, " "))
	}
	if check != nil {
		fmt.Fprintf(c.out, "check on %v\n", *check)
	}
}

func (c *console) Log(msg string) { fmt.Fprintln(c.out, msg) }
