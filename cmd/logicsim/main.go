// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command logicsim runs circuit scripts against the logicsim engine.
//
// A script is a Starlark program with circuit builtins predeclared.
// For example, an SR latch driven by two toggles:
//
//	s = toggle()
//	r = toggle()
//	latch = sr_latch()
//	set_input(latch, "S", s)
//	set_input(latch, "R", r)
//	probe(latch, "Q")
//	probe(q_bar(latch), "~Q")
//	set(s, True)
//	tick(4)
//	set(s, False)
//	tick(4)
//
// Run a script with
//
//	logicsim -f latch.star
//
// add -t n to run n more probe update ticks after the script, or
// start an interactive session with
//
//	logicsim -i
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"go.starlark.net/starlark"
)

func main() {
	var (
		script      string
		ticks       int
		interactive bool
	)
	flag.StringVar(&script, "f", "", "circuit script to run")
	flag.IntVar(&ticks, "t", 0, "probe update ticks to run after the script")
	flag.BoolVar(&interactive, "i", false, "interactive mode")
	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: unknown arguments: %v", os.Args[0], flag.Args())
	}

	env := newEnv()
	thread := &starlark.Thread{Name: "logicsim"}
	predeclared := env.builtins()

	if script != "" {
		globals, err := starlark.ExecFile(thread, script, nil, predeclared)
		if err != nil {
			log.Fatal(evalError(err))
		}
		// script globals stay visible in an interactive session
		for k, v := range globals {
			predeclared[k] = v
		}
	}

	if err := env.runTicks(ticks); err != nil {
		log.Fatal(err)
	}

	if interactive || script == "" {
		if err := repl(thread, predeclared); err != nil {
			log.Fatal(err)
		}
	}
}

// repl reads single lines and evaluates them, trying expression
// syntax first and falling back to statements (assignments, loops).
func repl(thread *starlark.Thread, predeclared starlark.StringDict) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt, io.EOF:
			return nil
		default:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if v, err := starlark.Eval(thread, "<stdin>", line, predeclared); err == nil {
			if v != starlark.None {
				fmt.Println(v)
			}
			continue
		}
		globals, err := starlark.ExecFile(thread, "<stdin>", line, predeclared)
		if err != nil {
			fmt.Fprintln(os.Stderr, evalError(err))
			continue
		}
		for k, v := range globals {
			predeclared[k] = v
		}
	}
}

// evalError unwraps Starlark backtraces into something readable.
func evalError(err error) string {
	if e, ok := err.(*starlark.EvalError); ok {
		return e.Backtrace()
	}
	return err.Error()
}
