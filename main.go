// Package main - enigma is a command-line and terminal front-end for a
// Wehrmacht Enigma M3/M4 machine: plugboard, rotor stack, reflector, and
// the double-stepping anomaly, faithful to the historical wirings.
package main

import "github.com/enigma-m3/enigma/cmd"

func main() {
	cmd.Execute()
}
