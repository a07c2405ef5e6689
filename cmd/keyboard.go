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
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/enigma-m3/enigma/internal/tui"
)

// keyboardCmd represents the keyboard command
var keyboardCmd = &cobra.Command{
	Use:   "keyboard",
	Short: "Operate the machine interactively",
	Long: `Operate the machine keystroke by keystroke: type letters, watch the
lampboard light the enciphered letter and the rotors advance, exactly like
sitting at the real machine.`,
	Run: func(cmd *cobra.Command, args []string) {
		m := buildMachine(cmd, true)
		p := tea.NewProgram(tui.New(m), tea.WithAltScreen())
		_, err := p.Run()
		cobra.CheckErr(err)
	},
}

func init() {
	rootCmd.AddCommand(keyboardCmd)
}
