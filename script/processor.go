// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/fatih/color"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/fault"
)

// Processor - runs commands against an index
type Processor struct {
	index Index
	parse ParseFunc
	out   io.Writer
	log   *logger.L

	failure *color.Color
	success *color.Color
}

// a command and its permitted argument count, -1 for no upper limit
type command struct {
	minArgs int
	maxArgs int
	run     func(p *Processor, args []string) error
}

var commands = map[string]command{
	"insert":    {1, -1, (*Processor).insert},
	"delete":    {1, -1, (*Processor).delete},
	"remove":    {1, -1, (*Processor).delete},
	"lookup":    {1, 1, (*Processor).lookup},
	"contains":  {1, 1, (*Processor).contains},
	"successor": {1, 1, (*Processor).successor},
	"deepest":   {0, 0, (*Processor).deepest},
	"height":    {0, 0, (*Processor).height},
	"count":     {0, 0, (*Processor).count},
	"size":      {0, 0, (*Processor).count},
	"clear":     {0, 0, (*Processor).clear},
	"list":      {0, 0, (*Processor).list},
	"check":     {0, 0, (*Processor).check},
	"print":     {0, 0, (*Processor).print},
}

// New - create a processor writing results to out
//
// colour output is off until enabled by SetColour
func New(index Index, parse ParseFunc, out io.Writer, log *logger.L) *Processor {
	p := &Processor{
		index:   index,
		parse:   parse,
		out:     out,
		log:     log,
		failure: color.New(color.FgRed),
		success: color.New(color.FgGreen),
	}
	p.SetColour(false)
	return p
}

// SetColour - enable or disable ANSI colours on error and check lines
func (p *Processor) SetColour(enabled bool) {
	for _, c := range []*color.Color{p.failure, p.success} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Execute - run a single command line
//
// the error is also written to the output
func (p *Processor) Execute(line string) error {
	fields := strings.Fields(line)
	if 0 == len(fields) || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	p.log.Debugf("command: %q", line)

	name := strings.ToLower(fields[0])
	args := fields[1:]

	err := p.dispatch(name, args)
	if nil != err {
		p.log.Warnf("command: %q  error: %s", line, err)
		p.failure.Fprintf(p.out, "error: %s: %s\n", name, err)
	}
	return err
}

func (p *Processor) dispatch(name string, args []string) error {
	c, ok := commands[name]
	if !ok {
		return fault.ErrUnknownCommand
	}
	if len(args) < c.minArgs || (c.maxArgs >= 0 && len(args) > c.maxArgs) {
		return fault.ErrArgumentCount
	}
	return c.run(p, args)
}

// Run - execute every line of a script
//
// command errors do not stop the script; returns the number of failed
// commands and any read error
func (p *Processor) Run(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	lines := 0
	failed := 0
	for scanner.Scan() {
		lines += 1
		if err := p.Execute(scanner.Text()); nil != err {
			failed += 1
		}
	}
	if err := scanner.Err(); nil != err {
		p.log.Errorf("read error after %d lines: %s", lines, err)
		return failed, err
	}
	p.log.Infof("lines: %d  failed: %d  count: %d", lines, failed, p.index.Count())
	return failed, nil
}

func (p *Processor) keys(args []string) ([]avl.Item, error) {
	return ParseList(p.parse, args)
}

func (p *Processor) key(arg string) (avl.Item, error) {
	return p.parse(arg)
}

func (p *Processor) insert(args []string) error {
	keys, err := p.keys(args)
	if nil != err {
		return err
	}
	for _, key := range keys {
		added, err := p.index.Insert(key)
		if nil != err {
			return err
		}
		if added {
			fmt.Fprintf(p.out, "inserted: %v\n", key)
		} else {
			fmt.Fprintf(p.out, "duplicate: %v\n", key)
		}
	}
	return nil
}

func (p *Processor) delete(args []string) error {
	keys, err := p.keys(args)
	if nil != err {
		return err
	}
	for _, key := range keys {
		removed, err := p.index.Delete(key)
		if nil != err {
			return err
		}
		fmt.Fprintf(p.out, "deleted: %v\n", removed)
	}
	return nil
}

func (p *Processor) lookup(args []string) error {
	key, err := p.key(args[0])
	if nil != err {
		return err
	}
	found, err := p.index.Lookup(key)
	if nil != err {
		return err
	}
	fmt.Fprintf(p.out, "found: %v\n", found)
	return nil
}

func (p *Processor) contains(args []string) error {
	key, err := p.key(args[0])
	if nil != err {
		return err
	}
	present, err := p.index.Contains(key)
	if nil != err {
		return err
	}
	fmt.Fprintf(p.out, "contains: %v %t\n", key, present)
	return nil
}

func (p *Processor) successor(args []string) error {
	key, err := p.key(args[0])
	if nil != err {
		return err
	}
	next, ok, err := p.index.Successor(key)
	if nil != err {
		return err
	}
	if ok {
		fmt.Fprintf(p.out, "successor: %v → %v\n", key, next)
	} else {
		fmt.Fprintf(p.out, "successor: %v → none\n", key)
	}
	return nil
}

func (p *Processor) deepest(args []string) error {
	if key, ok := p.index.Deepest(); ok {
		fmt.Fprintf(p.out, "deepest: %v\n", key)
	} else {
		fmt.Fprintf(p.out, "deepest: none\n")
	}
	return nil
}

func (p *Processor) height(args []string) error {
	fmt.Fprintf(p.out, "height: %d\n", p.index.Height())
	return nil
}

func (p *Processor) count(args []string) error {
	fmt.Fprintf(p.out, "count: %d\n", p.index.Count())
	return nil
}

func (p *Processor) clear(args []string) error {
	p.index.Clear()
	fmt.Fprintf(p.out, "cleared\n")
	return nil
}

func (p *Processor) list(args []string) error {
	items := p.index.Items()
	s := make([]string, len(items))
	for i, key := range items {
		s[i] = fmt.Sprint(key)
	}
	fmt.Fprintf(p.out, "list: %s\n", strings.Join(s, " "))
	return nil
}

func (p *Processor) check(args []string) error {
	if err := p.index.Check(); nil != err {
		return err
	}
	p.success.Fprintf(p.out, "check: ok\n")
	return nil
}

func (p *Processor) print(args []string) error {
	depth := p.index.Print(p.out, true)
	p.log.Debugf("print depth: %d", depth)
	return nil
}
