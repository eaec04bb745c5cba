// Package main is the desky command: a terminal host for the panel core
// plus configuration tooling.
//
// Usage:
//
//	desky run                 Start the interactive demo
//	desky config dump         Print the effective configuration as YAML
//	desky config schema       Print the configuration JSON schema
//	desky config path         Print the configuration file in use
//	desky version             Print version information
package main

import (
	"os"
)

var (
	version = "0.1.0"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
