package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kaspanet/addrvalidator/infrastructure/logger"
	"github.com/kaspanet/addrvalidator/netparams"
	"github.com/kaspanet/addrvalidator/util/address"
	"github.com/pkg/errors"
)

// readAddresses reads one address per line, skipping blank lines and lines
// starting with '#'.
func readAddresses(r io.Reader) ([]string, error) {
	var addresses []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addresses = append(addresses, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading addresses")
	}
	return addresses, nil
}

// validateAddresses validates every address against params, writes a line
// per address to w unless quiet is set, and returns the number of invalid
// addresses.
func validateAddresses(addresses []string, params *netparams.Params, w io.Writer, quiet bool) (int, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "validateAddresses")
	defer onEnd()

	invalid := 0
	for _, addr := range addresses {
		valid := address.IsValid(addr, params)
		if !valid {
			invalid++
		}
		if quiet {
			continue
		}
		status := "valid"
		if !valid {
			status = "invalid"
		}
		_, err := fmt.Fprintf(w, "%s\t%s\n", addr, status)
		if err != nil {
			return 0, errors.Wrap(err, "error writing result")
		}
	}

	log.Infof("Validated %d addresses on %s, %d invalid", len(addresses), params.Name, invalid)
	return invalid, nil
}
