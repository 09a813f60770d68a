// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/configuration"
	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/avlindex/script"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [script...]", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0
	if verbose {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.LoggerConfiguration()); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	parse, err := script.ParserFor(theConfiguration.KeyType)
	if nil != err {
		exitwithstatus.Message("%s: key type: %q  error: %s", program, theConfiguration.KeyType, err)
	}

	items, err := script.ParseList(parse, theConfiguration.Items)
	if nil != err {
		exitwithstatus.Message("%s: configuration items error: %s", program, err)
	}

	tree, err := avl.NewFromList(items)
	if nil != err {
		exitwithstatus.Message("%s: load items error: %s", program, err)
	}
	log.Infof("loaded: %d of %d items  height: %d", tree.Count(), len(items), tree.Height())

	var out io.Writer = os.Stdout
	if quiet {
		out = ioutil.Discard
	}

	processor := script.New(tree, parse, out, logger.New("script"))
	processor.SetColour(theConfiguration.Colour)

	failed, err := runScripts(processor, arguments)
	if nil != err {
		fault.Criticalf("script error: %s", err)
		exitwithstatus.Message("%s: script error: %s", program, err)
	}
	if failed > 0 {
		log.Warnf("failed commands: %d", failed)
		exitwithstatus.Exit(1)
	}
}

// run each named script in turn, or standard input if there are none
func runScripts(processor *script.Processor, fileNames []string) (int, error) {
	if 0 == len(fileNames) {
		return processor.Run(os.Stdin)
	}

	total := 0
	for _, name := range fileNames {
		failed, err := runFile(processor, name)
		total += failed
		if nil != err {
			return total, err
		}
	}
	return total, nil
}

func runFile(processor *script.Processor, fileName string) (int, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return 0, err
	}
	defer f.Close()
	return processor.Run(f)
}
