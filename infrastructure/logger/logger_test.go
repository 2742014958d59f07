package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestBackendWritesByLevel(t *testing.T) {
	backend := NewBackendWithFlags(0)
	var all, errorsOnly bytes.Buffer
	if err := backend.AddLogWriter(&all, LevelTrace); err != nil {
		t.Fatalf("AddLogWriter: unexpected error %v", err)
	}
	if err := backend.AddLogWriter(&errorsOnly, LevelError); err != nil {
		t.Fatalf("AddLogWriter: unexpected error %v", err)
	}
	if err := backend.Run(); err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	if err := backend.Run(); err == nil {
		t.Errorf("Run: expected an error when running twice")
	}
	if err := backend.AddLogWriter(&all, LevelTrace); err == nil {
		t.Errorf("AddLogWriter: expected an error on a running backend")
	}

	log := backend.Logger("TEST")
	log.SetLevel(LevelDebug)
	log.Tracef("filtered %d", 1)
	log.Debugf("debug %d", 2)
	log.Errorf("error %d", 3)
	backend.Close()

	lines := strings.Split(strings.TrimSpace(all.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), all.String())
	}
	if !strings.HasSuffix(lines[0], "[DBG] TEST: debug 2") {
		t.Errorf("unexpected debug line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "[ERR] TEST: error 3") {
		t.Errorf("unexpected error line %q", lines[1])
	}
	if !strings.HasSuffix(strings.TrimSpace(errorsOnly.String()), "[ERR] TEST: error 3") ||
		strings.Contains(errorsOnly.String(), "debug") {
		t.Errorf("unexpected error writer output %q", errorsOnly.String())
	}
}

func TestLoggerWithoutRunningBackend(t *testing.T) {
	backend := NewBackendWithFlags(0)
	log := backend.Logger("TEST")
	log.SetLevel(LevelTrace)

	// Nothing consumes the channel, so writing more entries than it buffers
	// would block if the logger did not drop them.
	for i := 0; i < logsBuffer*2; i++ {
		log.Infof("dropped %d", i)
	}
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"trace", LevelTrace, true},
		{"DBG", LevelDebug, true},
		{"info", LevelInfo, true},
		{"wrn", LevelWarn, true},
		{"error", LevelError, true},
		{"critical", LevelCritical, true},
		{"off", LevelOff, true},
		{"verbose", LevelInfo, false},
	}

	for _, test := range tests {
		got, ok := LevelFromString(test.in)
		if got != test.want || ok != test.ok {
			t.Errorf("LevelFromString(%q): got: (%s, %t), want: (%s, %t)",
				test.in, got, ok, test.want, test.ok)
		}
	}

	var level Level
	if err := level.UnmarshalFlag("warn"); err != nil || level != LevelWarn {
		t.Errorf("UnmarshalFlag(warn): got: (%s, %v), want: (%s, nil)", level, err, LevelWarn)
	}
	if err := level.UnmarshalFlag("loud"); err == nil {
		t.Errorf("UnmarshalFlag(loud): expected an error")
	}
}

func TestParseAndSetLogLevels(t *testing.T) {
	defer SetLogLevels(LevelInfo)

	tests := []struct {
		in      string
		addr    Level
		aval    Level
		wantErr bool
	}{
		{"debug", LevelDebug, LevelDebug, false},
		{"ADDR=trace,AVAL=error", LevelTrace, LevelError, false},
		{"ADDR=warn", LevelWarn, LevelError, false},
		{"loud", LevelWarn, LevelError, true},
		{"ADDR=trace,AVAL", LevelTrace, LevelError, true},
		{"NOPE=trace", LevelTrace, LevelError, true},
	}

	addrLog, _ := Get(SubsystemTags.ADDR)
	avalLog, _ := Get(SubsystemTags.AVAL)
	for _, test := range tests {
		err := ParseAndSetLogLevels(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseAndSetLogLevels(%q): expected error status: %t, but got %v",
				test.in, test.wantErr, err)
		}
		if addrLog.Level() != test.addr || avalLog.Level() != test.aval {
			t.Errorf("ParseAndSetLogLevels(%q): got levels (%s, %s), want (%s, %s)",
				test.in, addrLog.Level(), avalLog.Level(), test.addr, test.aval)
		}
	}
}
