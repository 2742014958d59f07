package main

import (
	"os"

	"github.com/kaspanet/addrvalidator/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.AVAL)

func initLog(cfg *configFlags) error {
	if cfg.LogDir != "" {
		err := logger.BackendLog.AddLogFile(cfg.logFile(), logger.LevelTrace)
		if err != nil {
			return err
		}
		err = logger.BackendLog.AddLogFile(cfg.errLogFile(), logger.LevelWarn)
		if err != nil {
			return err
		}
	}
	if cfg.ConsoleLevel != logger.LevelOff {
		err := logger.BackendLog.AddLogWriter(os.Stderr, cfg.ConsoleLevel)
		if err != nil {
			return err
		}
	}
	return logger.BackendLog.Run()
}
