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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var saveSettings bool

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the machine configuration",
	Long: `Show the resolved daily key the way an operator's sheet would list it.
With --save, the codebook line is written to the config file and becomes the
default key for later runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		m := buildMachine(cmd, true)
		fmt.Print(m.Summary())
		if saveSettings {
			viper.Set("key", m.Settings().String())
			var err error
			if viper.ConfigFileUsed() == "" {
				err = viper.SafeWriteConfig()
			} else {
				err = viper.WriteConfig()
			}
			cobra.CheckErr(err)
			slog.Info("saved daily key", "config", viper.ConfigFileUsed())
		}
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.Flags().BoolVar(&saveSettings, "save", false, "write the daily key to the config file")
}
