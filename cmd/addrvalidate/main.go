package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kaspanet/addrvalidator/infrastructure/logger"
)

const (
	exitCodeError   = 1
	exitCodeInvalid = 2
)

func main() {
	cfg, err := parseConfig(os.Args[1:], isTerminal(os.Stdin))
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error parsing command-line arguments: %s", err))
	}

	err = initLog(cfg)
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error initializing the logger: %s", err))
	}

	invalid, err := run(cfg, os.Stdin, os.Stdout)
	logger.BackendLog.Close()
	if err != nil {
		printErrorAndExit(err.Error())
	}
	if invalid > 0 {
		os.Exit(exitCodeInvalid)
	}
}

func run(cfg *configFlags, stdin io.Reader, stdout io.Writer) (int, error) {
	addresses := cfg.Addresses
	if cfg.File != "" {
		source := stdin
		if cfg.File != "-" {
			file, err := os.Open(cfg.File)
			if err != nil {
				return 0, err
			}
			defer file.Close()
			source = file
		}

		var err error
		addresses, err = readAddresses(source)
		if err != nil {
			return 0, err
		}
	}

	log.Debugf("Validating %d addresses", len(addresses))
	return validateAddresses(addresses, cfg.NetParams(), stdout, cfg.Quiet)
}

func printErrorAndExit(message string) {
	fmt.Fprintln(os.Stderr, message)
	os.Exit(exitCodeError)
}
