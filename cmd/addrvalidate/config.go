package main

import (
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/addrvalidator/infrastructure/config"
	"github.com/kaspanet/addrvalidator/infrastructure/logger"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const (
	defaultLogLevel       = "info"
	defaultLogFilename    = "addrvalidate.log"
	defaultErrLogFilename = "addrvalidate_err.log"
)

type configFlags struct {
	File         string       `short:"f" long:"file" description:"Read addresses from this file, one per line ('-' for stdin)"`
	Quiet        bool         `short:"q" long:"quiet" description:"Do not print results, only set the exit status"`
	LogLevel     string       `short:"d" long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogDir       string       `long:"logdir" description:"Directory to write log files to"`
	ConsoleLevel logger.Level `long:"consolelevel" default:"off" description:"Minimum level of log messages also printed to stderr"`
	Addresses    []string
	config.NetworkFlags
}

func (cfg *configFlags) logFile() string {
	return filepath.Join(cfg.LogDir, defaultLogFilename)
}

func (cfg *configFlags) errLogFile() string {
	return filepath.Join(cfg.LogDir, defaultErrLogFilename)
}

func parseConfig(args []string, stdinIsTerminal bool) (*configFlags, error) {
	cfg := &configFlags{
		LogLevel: defaultLogLevel,
	}
	parser := flags.NewParser(cfg, flags.HelpFlag)
	parser.Usage = "addrvalidate [OPTIONS] [ADDRESS...]\n\n" +
		"Addresses are read from the command line, from --file, or from stdin when it is not a terminal"
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	err = logger.ParseAndSetLogLevels(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	cfg.Addresses = remainingArgs
	if len(cfg.Addresses) > 0 && cfg.File != "" {
		return nil, errors.New("Addresses cannot be given both as arguments and with --file")
	}
	if len(cfg.Addresses) == 0 && cfg.File == "" {
		if stdinIsTerminal {
			return nil, errors.New("No addresses given. Pass them as arguments, with --file, or on stdin")
		}
		cfg.File = "-"
	}

	return cfg, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
