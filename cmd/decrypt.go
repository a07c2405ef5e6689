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
	"bufio"
	"io"
	"strings"

	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [text]",
	Short: "Decrypt a message with the configured machine",
	Long: `Decrypt a message with the configured Enigma machine.  The cipher is
reciprocal, so this is the same signal path as encrypt; five-letter groups
and line folds in the input are stripped before deciphering.  PEM-armored
messages are detected automatically and the start position is taken from
the indicator headers.`,
	Run: func(cmd *cobra.Command, args []string) {
		decrypt(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
}

func decrypt(cmd *cobra.Command, args []string) {
	m := buildMachine(cmd, len(args) > 0 || inputFileName != "-")
	fin, fout := getInputAndOutputFiles(false)
	defer fout.Close()

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		bRdr := bufio.NewReader(fin)
		peek, _ := bRdr.Peek(5)
		if string(peek) == "-----" {
			pRdr, blck := pem.FromPem(bRdr)
			if pos, ok := blck.Headers["Position"]; ok {
				cobra.CheckErr(m.SetPositions(pos))
			}
			raw, err := io.ReadAll(pRdr)
			checkError(err)
			text = string(raw)
		} else {
			raw, err := io.ReadAll(lines.CombineLines(bRdr))
			checkError(err)
			text = string(raw)
		}
	}

	plainText, err := m.Process(normalizeText(text))
	cobra.CheckErr(err)
	_, err = fout.WriteString(plainText + "\n")
	cobra.CheckErr(err)
}
