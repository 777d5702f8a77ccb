package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"chessengine/engine"
	"chessengine/position"
)

func main() {
	uciLoop()
}

func uciLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	eng := engine.NewEngine("")
	defer eng.Close()

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name chessengine")
			fmt.Println("id author student")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			eng.NewGame()
		case "quit":
			return
		case "position":
			handlePosition(eng, tokens[1:])
		case "go":
			handleGo(eng)
		default:
			fmt.Println("info string unknown command:", tokens[0])
		}
	}
}

func handlePosition(eng *engine.Engine, tokens []string) {
	if len(tokens) == 0 {
		fmt.Println("info string malformed position command")
		return
	}

	rest := tokens[1:]
	switch strings.ToLower(tokens[0]) {
	case "startpos":
		eng.NewGame()
	case "fen":
		movesAt := len(rest)
		for i, tok := range rest {
			if strings.ToLower(tok) == "moves" {
				movesAt = i
				break
			}
		}
		fen := strings.Join(rest[:movesAt], " ")
		if err := eng.LoadPositionFromFEN(fen); err != nil {
			fmt.Println("info string invalid fen:", err)
			return
		}
		rest = rest[movesAt:]
	default:
		fmt.Println("info string invalid position subcommand:", tokens[0])
		return
	}

	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return
	}
	for _, moveStr := range rest[1:] {
		from, to, ok := parseUCIMove(moveStr)
		if !ok {
			fmt.Println("info string malformed move:", moveStr)
			continue
		}
		if !eng.SubmitHumanMove(from, to) {
			fmt.Println("info string illegal move:", moveStr)
		}
	}
}

// parseUCIMove accepts "e2e4"-style coordinate pairs; a trailing promotion
// letter (promotion is always to a queen) is accepted and ignored.
func parseUCIMove(s string) (position.Coordinate, position.Coordinate, bool) {
	if len(s) < 4 {
		return position.NullCoordinate, position.NullCoordinate, false
	}
	from, err := position.ParseCoordinate(s[0:2])
	if err != nil {
		return position.NullCoordinate, position.NullCoordinate, false
	}
	to, err := position.ParseCoordinate(s[2:4])
	if err != nil {
		return position.NullCoordinate, position.NullCoordinate, false
	}
	return from, to, true
}

func handleGo(eng *engine.Engine) {
	eng.RequestEngineMove()
	for {
		move, ok := eng.PollEngineMove()
		if ok {
			if move.IsNull() {
				fmt.Println("bestmove 0000")
			} else {
				fmt.Println("bestmove", move.String())
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}
