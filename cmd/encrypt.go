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
	"io"
	"strings"

	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"

	"github.com/enigma-m3/enigma/machine"
)

var (
	usePem    bool
	useGroups bool
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [text]",
	Short: "Encrypt a message with the configured machine",
	Long: `Encrypt a message with the configured Enigma machine.  The message is
read from the command line, the input file, or stdin; whitespace is dropped
and letters are folded to upper case before enciphering.`,
	Run: func(cmd *cobra.Command, args []string) {
		encrypt(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().BoolVarP(&usePem, "usePem", "P", false, "armor the message as a PEM block carrying the indicator headers")
	encryptCmd.Flags().BoolVarP(&useGroups, "groups", "g", false, "write the ciphertext in five-letter radio groups")
}

func encrypt(cmd *cobra.Command, args []string) {
	m := buildMachine(cmd, len(args) > 0 || inputFileName != "-")
	fin, fout := getInputAndOutputFiles(true)
	defer fout.Close()

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		raw, err := io.ReadAll(fin)
		cobra.CheckErr(err)
		text = string(raw)
	}

	cipherText, err := m.Process(normalizeText(text))
	cobra.CheckErr(err)
	if useGroups {
		cipherText = machine.Groups(cipherText)
	}

	if usePem {
		// The headers carry the message indicator, not the key: rotor
		// order and start position were sent with historical messages,
		// the plugboard never was.
		var blck pem.Block
		blck.Type = "ENIGMA MESSAGE"
		blck.Headers = make(map[string]string)
		blck.Headers["Reflector"] = m.Settings().Reflector
		blck.Headers["Rotors"] = strings.Join(m.Settings().Rotors, ",")
		blck.Headers["Position"] = m.Settings().Position
		_, err = io.Copy(fout, pem.ToPem(strings.NewReader(cipherText), blck))
	} else {
		_, err = io.Copy(fout, lines.SplitToLines(strings.NewReader(cipherText)))
	}
	checkError(err)
}

// checkError ignores the EOF errors the stream filters surface at
// end-of-message and treats everything else as fatal.
func checkError(e error) {
	if e != io.EOF && e != io.ErrUnexpectedEOF {
		cobra.CheckErr(e)
	}
}
