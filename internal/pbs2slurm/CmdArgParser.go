/**
 * Copyright (c) 2024 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * CraneSched is licensed under Mulan PSL v2.
 * You can use this software according to the terms and conditions of
 * the Mulan PSL v2.
 * You may obtain a copy of Mulan PSL v2 at:
 *          http://license.coscl.org.cn/MulanPSL2
 * THIS SOFTWARE IS PROVIDED ON AN "AS IS" BASIS,
 * WITHOUT WARRANTIES OF ANY KIND,
 * EITHER EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO NON-INFRINGEMENT,
 * MERCHANTABILITY OR FIT FOR A PARTICULAR PURPOSE.
 * See the Mulan PSL v2 for more details.
 */

package pbs2slurm

import (
	"os"

	"Pbs2Slurm/internal/util"

	"github.com/spf13/cobra"
)

var (
	FlagConfigFilePath string
	FlagOutputPath     string
	FlagSummary        bool
	FlagJson           bool
	FlagLogFile        string

	RootCmd = &cobra.Command{
		Use:   "pbs2slurm [flags] [file]",
		Short: "Convert a Torque/PBS job script into Slurm notation",
		Long: `Convert a Torque/PBS job submission script into Slurm notation.
The script is read from standard input, or from a file given as the
only positional argument, and the converted script is written to
standard output. Only a small, commonly used subset of the PBS syntax
is supported; unrecognized lines pass through unchanged. Directives
spanning multiple lines are not supported.`,
		Version: util.Version(),
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if FlagLogFile != "" {
				util.SetLogFile(FlagLogFile)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(RunConvert(args))
		},
	}
)

func ParseCmdArgs() {
	RootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := RootCmd.Execute(); err != nil {
		os.Exit(util.ErrorGeneric)
	}
}

func init() {
	RootCmd.SetVersionTemplate(util.VersionTemplate())
	RootCmd.Flags().StringVarP(&FlagConfigFilePath, "config", "C",
		util.DefaultConfigPath, "Path to configuration file")
	RootCmd.Flags().StringVarP(&FlagOutputPath, "output", "o", "",
		"Write the converted script to this file instead of standard output")
	RootCmd.Flags().BoolVar(&FlagSummary, "summary", false,
		"Print per-directive conversion counts to standard error")
	RootCmd.Flags().BoolVar(&FlagJson, "json", false,
		"Print the conversion summary in JSON format")
	RootCmd.Flags().StringVar(&FlagLogFile, "log-file", "",
		"Also write logs to this file, with rotation")
}
