package config

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/addrvalidator/netparams"
)

func TestResolveNetwork(t *testing.T) {
	tests := []struct {
		args    []string
		want    *netparams.Params
		wantErr bool
	}{
		{nil, &netparams.MainnetParams, false},
		{[]string{"--testnet"}, &netparams.TestnetParams, false},
		{[]string{"--network=testnet"}, &netparams.TestnetParams, false},
		{[]string{"--network=mainnet"}, &netparams.MainnetParams, false},
		{[]string{"--network=testnet", "--testnet"}, &netparams.TestnetParams, false},
		{[]string{"--network=mainnet", "--testnet"}, nil, true},
		{[]string{"--network=regtest"}, nil, true},
	}

	for _, test := range tests {
		cfg := &NetworkFlags{}
		parser := flags.NewParser(cfg, flags.HelpFlag)
		_, err := parser.ParseArgs(test.args)
		if err != nil {
			t.Fatalf("ParseArgs(%v): unexpected error %v", test.args, err)
		}

		err = cfg.ResolveNetwork(parser)
		if (err != nil) != test.wantErr {
			t.Errorf("ResolveNetwork(%v): expected error status: %t, but got %v",
				test.args, test.wantErr, err)
			continue
		}
		if err != nil {
			continue
		}
		if cfg.NetParams() != test.want {
			t.Errorf("ResolveNetwork(%v): got: %s, want: %s",
				test.args, cfg.NetParams().Name, test.want.Name)
		}
		if cfg.IsTestnet() != (test.want == &netparams.TestnetParams) {
			t.Errorf("IsTestnet(%v): got: %t", test.args, cfg.IsTestnet())
		}
	}
}
