// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/walteh/sheetsplit/cmd/sheetsplit/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetsplit",
		Short: "Split multi-tab workout spreadsheets into standalone documents",
		Long: `sheetsplit walks a folder of multi-tab client spreadsheets and copies
every valid workout sheet into its own spreadsheet in a destination
folder: renamed, numbered and with the client name redacted. A
coach-maintained translation table decides which clients migrate and
what they are called afterwards.`,
		SilenceUsage: true,
		// Logging depends on the --debug flag, so the context is only
		// built once flags are parsed.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(setupLogging(cmd.Context()))
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewMigrateCmd(rootOpts),
		commands.NewBootstrapCmd(rootOpts),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
