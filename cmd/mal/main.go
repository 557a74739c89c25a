package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"

	"github.com/bshepherdson/mal/interp"
	"github.com/bshepherdson/mal/reader"
)

const (
	historyFile = ".mal_history"
	prompt      = "user> "
)

var (
	historyPath = flag.String("history", defaultHistoryPath(), "file the REPL reads and appends line history to")
	dump        = flag.Bool("dump", false, "print each form as read before evaluating it")
)

func defaultHistoryPath() string {
	if p := os.Getenv("MAL_HISTORY"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [script [args...]]\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mal: ")
	flag.Usage = usage
	flag.Parse()

	in, err := interp.New(os.Stdout)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	if args := flag.Args(); len(args) > 0 {
		in.SetArgv(args[1:])
		if err := in.LoadFile(args[0]); err != nil {
			log.Printf("%s: %s", args[0], interp.Describe(err))
			os.Exit(1)
		}
		return
	}

	repl(in)
}

func repl(in *interp.Interpreter) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(*historyPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("read line: %v", err)
			}
			fmt.Println()
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		ln.AppendHistory(line)
		appendHistory(*historyPath, line)

		s, err := rep(in, line)
		switch {
		case errors.Is(err, reader.ErrNoForm):
		case err != nil:
			fmt.Fprintln(os.Stderr, interp.Describe(err))
		default:
			fmt.Println(s)
		}
	}
}

func rep(in *interp.Interpreter, line string) (string, error) {
	if !*dump {
		return in.Rep(line)
	}

	form, err := in.Read(line)
	if err != nil {
		return "", err
	}
	spew.Fdump(os.Stderr, form)

	evald, err := in.Eval(form)
	if err != nil {
		return "", err
	}
	return in.Print(evald), nil
}

// appendHistory writes one entry to the end of the history file.
func appendHistory(path, line string) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("history: %v", err)
		return
	}
	defer f.Close()
	fmt.Fprintln(f, strings.ReplaceAll(line, "\n", " "))
}
