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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/sheetsplit/cmd/sheetsplit/opts"
)

var rootOpts = &opts.RootOpts{}

// 🔧 addRootFlags adds the flags every command shares
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&rootOpts.ConfigFile, "config", "c", ".sheetsplit.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&rootOpts.Debug, "debug", "d", false, "enable debug logging")
}

// 📝 setupLogging builds the logger every component pulls from the context.
// Normal runs stay quiet on stderr so the progress output owns the terminal;
// debug runs get the full structured stream.
func setupLogging(ctx context.Context) context.Context {
	level := zerolog.WarnLevel
	if rootOpts.Debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
