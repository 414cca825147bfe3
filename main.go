// Copyright 2025 Naren Yellavula
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
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	asciiLogo := `
 ██████╗ ██████╗ ██████╗ ██████╗ ███████╗███╗   ██╗ ██████╗██╗  ██╗
██╔═══██╗██╔══██╗██╔══██╗██╔══██╗██╔════╝████╗  ██║██╔════╝██║  ██║
██║   ██║██████╔╝██║  ██║██████╔╝█████╗  ██╔██╗ ██║██║     ███████║
██║   ██║██╔══██╗██║  ██║██╔══██╗██╔══╝  ██║╚██╗██║██║     ██╔══██║
╚██████╔╝██║  ██║██████╔╝██████╔╝███████╗██║ ╚████║╚██████╗██║  ██║
 ╚═════╝ ╚═╝  ╚═╝╚═════╝ ╚═════╝ ╚══════╝╚═╝  ╚═══╝ ╚═════╝╚═╝  ╚═╝
Array vs. BST vs. AVL: insertion, search and sorting benchmarks [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	opts := &runOptions{}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Runs the insertion, sort and search benchmarks",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run measures every configured size and insertion order and prints a report`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd, opts)
		},
	}
	opts.bindFlags(cmdRun)

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the effective configuration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Settings prints ~/.ordbench.yaml, creating it with defaults when missing"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print ordbench usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the ordbench CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print ordbench version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootOpts := &runOptions{}
	var rootCmd = &cobra.Command{
		Use:           "ordbench",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to run command when no subcommand is provided
			return runBenchmark(cmd, rootOpts)
		},
	}
	rootOpts.bindFlags(rootCmd)

	rootCmd.AddCommand(cmdRun, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", Error, Reset, err)
		os.Exit(1)
	}
}
