/*
Copyright © 2025 The enigma-m3 Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/enigma-m3/enigma/machine"
)

var (
	cfgFile        string
	keyLine        string
	reflectorName  string
	rotorNames     []string
	ringSettings   []int
	startPosition  string
	plugboardPairs string
	inputFileName  string
	outputFileName string
	Version        string = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "A Wehrmacht Enigma M3/M4 cipher machine",
	Long: `enigma simulates the electro-mechanical signal path of the Enigma
machine: plugboard, three stepping rotors, reflector, and the historical
double-stepping anomaly.  The cipher is reciprocal, so one daily key both
encrypts and decrypts.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enigma.yaml)")
	rootCmd.PersistentFlags().StringVarP(&keyLine, "key", "k", "", `daily key as a codebook line, e.g. "B;I,II,III;1,1,1;AAA;AB CD"`)
	rootCmd.PersistentFlags().StringVar(&reflectorName, "reflector", "B", "reflector name (A, B, C, B-Thin, C-Thin)")
	rootCmd.PersistentFlags().StringSliceVar(&rotorNames, "rotors", []string{"I", "II", "III"}, "three rotors from I-VIII, ordered left,middle,right")
	rootCmd.PersistentFlags().IntSliceVar(&ringSettings, "rings", []int{1, 1, 1}, "ring settings 1-26, ordered left,middle,right")
	rootCmd.PersistentFlags().StringVarP(&startPosition, "position", "p", "AAA", "three-letter start position, ordered left,middle,right")
	rootCmd.PersistentFlags().StringVarP(&plugboardPairs, "plugboard", "s", "", `plugboard pairs, e.g. "AB CD EF" (at most 10)`)
	rootCmd.PersistentFlags().StringVarP(&inputFileName, "inputFile", "i", "-", "name of the file to read the message from")
	rootCmd.PersistentFlags().StringVarP(&outputFileName, "outputFile", "o", "", "name of the file to write the result to")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".enigma" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".enigma")
	}

	viper.SetEnvPrefix("enigma")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// buildMachine resolves the daily key and constructs the machine, exiting
// on any configuration error.
func buildMachine(cmd *cobra.Command, canPrompt bool) *machine.Machine {
	settings, err := resolveSettings(cmd, canPrompt)
	cobra.CheckErr(err)
	m, err := machine.New(settings)
	cobra.CheckErr(err)
	return m
}

// resolveSettings picks the daily key from, in order:
//  1. the --key codebook line
//  2. the individual machine flags, when any was set explicitly
//  3. the "key" entry of the config file (see "enigma settings --save")
//  4. a terminal prompt, when stdin is free for one
//  5. the flag defaults
//
// The prompt uses no-echo reads: a codebook sheet is key material and does
// not belong in the scrollback or the shell history.
func resolveSettings(cmd *cobra.Command, canPrompt bool) (machine.Settings, error) {
	if keyLine != "" {
		return machine.ParseSettings(keyLine)
	}
	if machineFlagsChanged(cmd) {
		return flagSettings(), nil
	}
	if viper.IsSet("key") {
		return machine.ParseSettings(viper.GetString("key"))
	}
	if canPrompt && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, "Enter the daily key (reflector;rotors;rings;position;plugboard): ")
		line, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr, "")
		if err != nil {
			return machine.Settings{}, err
		}
		if len(line) > 0 {
			return machine.ParseSettings(string(line))
		}
	}
	return flagSettings(), nil
}

func machineFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"reflector", "rotors", "rings", "position", "plugboard"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func flagSettings() machine.Settings {
	return machine.Settings{
		Reflector: reflectorName,
		Rotors:    rotorNames,
		Rings:     ringSettings,
		Position:  strings.ToUpper(startPosition),
		Plugboard: plugboardPairs,
	}
}

/*
	getInputAndOutputFiles will return the input and output files to use while
	encrypting/decrypting a message.  If input and/or output file names were
	given, then those files will be opened.  Otherwise stdin and stdout are used.
*/
func getInputAndOutputFiles(encrypting bool) (*os.File, *os.File) {
	var fin *os.File
	var err error

	if len(inputFileName) > 0 {
		if inputFileName == "-" {
			fin = os.Stdin
		} else {
			fin, err = os.Open(inputFileName)
			cobra.CheckErr(err)
		}
	} else {
		fin = os.Stdin
	}

	var fout *os.File

	if len(outputFileName) > 0 {
		if outputFileName == "-" {
			fout = os.Stdout
		} else {
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		}
	} else if inputFileName == "-" {
		fout = os.Stdout
	} else if encrypting {
		outputFileName = inputFileName + ".enigma"
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else {
		if strings.HasSuffix(inputFileName, ".enigma") {
			outputFileName = strings.TrimSuffix(inputFileName, ".enigma")
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		} else {
			fout = os.Stdout
		}
	}

	return fin, fout
}
