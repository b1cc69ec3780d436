package main

import (
	"GoSnake/game"
	"os"
)

func main() {
	cfg := game.LoadConfig()

	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		os.Stdout.WriteString("A game of Snake.\r\nControls: WASD to move, Q to quit, R to restart after game over.\r\nUse -l or --log to write an event log to GoSnake.log.\r\n")
		return
	} else if len(os.Args) > 1 && (os.Args[1] == "-l" || os.Args[1] == "--log") && cfg.LogFile == "" {
		cfg.LogFile = "GoSnake.log"
	}

	if err := game.Run(cfg); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
