// Package main starts the trayshift service.
package main

import "flag"

// main is the entrypoint for trayshift.
func main() {
	configPath := flag.String("config", "trayshift.yaml", "Path to the settings file")
	debug := flag.Bool("debug", false, "Enable diagnostic logging regardless of settings")
	flag.Parse()

	if err := run(*configPath, *debug); err != nil {
		logFatal(err)
	}
}
