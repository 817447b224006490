package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/srpnkit/srpn/pkg/calc"
)

const (
	appName     = "srpn"
	historyFile = ".srpn_history"
	banner      = "You can now start interacting with the SRPN calculator"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "run":
			os.Exit(cmdRun(os.Args[2:]))
		case "-h", "--help", "help":
			usage()
			return
		default:
			fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, os.Args[1])
			usage()
			os.Exit(2)
		}
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		os.Exit(repl())
	}
	os.Exit(batch(os.Stdin))
}

func usage() {
	fmt.Printf(`Usage:
  %s              Read lines from stdin (interactive when stdin is a terminal).
  %s run <file>   Evaluate a file line by line.
`, appName, appName)
}

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file>\n", appName)
		return 2
	}
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}
	defer f.Close()
	return batch(f)
}

// batch feeds every line of r to one calculator. Used for piped stdin and for
// "run <file>".
func batch(r io.Reader) int {
	c := calc.New(os.Stdout)
	in := bufio.NewScanner(r)
	for in.Scan() {
		c.ProcessLine(in.Text())
	}
	return 0
}

// repl runs the interactive loop. Ctrl+C abandons the current line, Ctrl+D
// exits; history persists across sessions in the home directory.
func repl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	c := calc.New(os.Stdout)
	for {
		line, err := ln.Prompt("")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if line != "" {
			ln.AppendHistory(line)
		}
		c.ProcessLine(line)
	}
}
