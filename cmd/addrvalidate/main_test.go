package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kaspanet/addrvalidator/infrastructure/logger"
	"github.com/kaspanet/addrvalidator/netparams"
)

func TestParseConfig(t *testing.T) {
	defer logger.SetLogLevels(logger.LevelInfo)

	tests := []struct {
		name            string
		args            []string
		stdinIsTerminal bool
		wantErr         bool
		wantFile        string
		wantParams      *netparams.Params
	}{
		{"arguments", []string{"17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem"}, true, false, "", &netparams.MainnetParams},
		{"testnet arguments", []string{"--testnet", "mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn"}, true, false, "", &netparams.TestnetParams},
		{"file", []string{"--file=addresses.txt"}, true, false, "addresses.txt", &netparams.MainnetParams},
		{"piped stdin", nil, false, false, "-", &netparams.MainnetParams},
		{"no input", nil, true, true, "", nil},
		{"arguments and file", []string{"-f", "addresses.txt", "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem"}, true, true, "", nil},
		{"bad log level", []string{"--loglevel=loud", "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem"}, true, true, "", nil},
		{"bad console level", []string{"--consolelevel=loud", "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem"}, true, true, "", nil},
		{"unknown network", []string{"--network=regtest", "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem"}, true, true, "", nil},
	}

	for _, test := range tests {
		cfg, err := parseConfig(test.args, test.stdinIsTerminal)
		if (err != nil) != test.wantErr {
			t.Errorf("%s: parseConfig: expected error status: %t, but got %v", test.name, test.wantErr, err)
			continue
		}
		if err != nil {
			continue
		}
		if cfg.File != test.wantFile {
			t.Errorf("%s: parseConfig: got file %q, want %q", test.name, cfg.File, test.wantFile)
		}
		if cfg.NetParams() != test.wantParams {
			t.Errorf("%s: parseConfig: got network %s, want %s", test.name, cfg.NetParams().Name, test.wantParams.Name)
		}
		if cfg.ConsoleLevel != logger.LevelOff {
			t.Errorf("%s: parseConfig: got console level %s, want %s", test.name, cfg.ConsoleLevel, logger.LevelOff)
		}
	}
}

func TestReadAddresses(t *testing.T) {
	input := "# mainnet\n17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem\n\n  bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4  \n"
	addresses, err := readAddresses(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readAddresses: unexpected error %v", err)
	}
	want := []string{"17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem", "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"}
	if strings.Join(addresses, ",") != strings.Join(want, ",") {
		t.Errorf("readAddresses: got: %v, want: %v", addresses, want)
	}
}

func TestRun(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "addrvalidate")
	if err != nil {
		t.Fatalf("Failed creating a temporary directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	addressFile := filepath.Join(tmpDir, "addresses.txt")
	err = ioutil.WriteFile(addressFile, []byte("tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx\n"+
		"17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem\n"), 0644)
	if err != nil {
		t.Fatalf("Failed writing the address file: %v", err)
	}

	tests := []struct {
		name        string
		cfg         *configFlags
		stdin       string
		wantInvalid int
		wantOutput  string
		wantErr     bool
	}{
		{
			name:        "arguments",
			cfg:         &configFlags{Addresses: []string{"17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem", "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t5"}},
			wantInvalid: 1,
			wantOutput:  "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem\tvalid\nbc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t5\tinvalid\n",
		},
		{
			name:        "testnet file",
			cfg:         &configFlags{File: addressFile},
			wantInvalid: 1,
			wantOutput:  "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx\tvalid\n17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem\tinvalid\n",
		},
		{
			name:        "quiet stdin",
			cfg:         &configFlags{File: "-", Quiet: true},
			stdin:       "3EktnHQD7RiAE6uzMj2ZifT9YgRrkSgzQX\n",
			wantInvalid: 0,
			wantOutput:  "",
		},
		{
			name:    "missing file",
			cfg:     &configFlags{File: filepath.Join(tmpDir, "missing.txt")},
			wantErr: true,
		},
	}

	for _, test := range tests {
		test.cfg.ActiveNetParams = &netparams.MainnetParams
		if test.name == "testnet file" {
			test.cfg.ActiveNetParams = &netparams.TestnetParams
		}

		var stdout bytes.Buffer
		invalid, err := run(test.cfg, strings.NewReader(test.stdin), &stdout)
		if (err != nil) != test.wantErr {
			t.Errorf("%s: run: expected error status: %t, but got %v", test.name, test.wantErr, err)
			continue
		}
		if err != nil {
			continue
		}
		if invalid != test.wantInvalid {
			t.Errorf("%s: run: got %d invalid, want %d", test.name, invalid, test.wantInvalid)
		}
		if stdout.String() != test.wantOutput {
			t.Errorf("%s: run: got output %q, want %q", test.name, stdout.String(), test.wantOutput)
		}
	}
}
