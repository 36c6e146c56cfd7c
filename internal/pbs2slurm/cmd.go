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
	"fmt"
	"os"

	"Pbs2Slurm/internal/util"

	log "github.com/sirupsen/logrus"
)

// RunConvert binds stdin/stdout (or the file arguments) to the conversion
// loop and returns the process exit code.
func RunConvert(args []string) util.CmdError {
	config, err := util.ParseConfig(FlagConfigFilePath)
	if err != nil {
		log.Errorf("Invalid configuration: %v", err)
		return util.ErrorCmdArg
	}

	input := os.Stdin
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			log.Errorf("Failed to open script: %v", err)
			return util.ErrorCmdArg
		}
		defer func(file *os.File) {
			if err := file.Close(); err != nil {
				log.Errorf("Failed to close %s.\n", file.Name())
			}
		}(file)
		input = file
	}

	output := os.Stdout
	var outputFile *os.File
	if FlagOutputPath != "" {
		outputFile, err = os.Create(FlagOutputPath)
		if err != nil {
			log.Errorf("Failed to create output file: %v", err)
			return util.ErrorCmdArg
		}
		output = outputFile
	}

	stats, err := Convert(input, output, NewTranslator(config))
	if err != nil {
		log.Errorf("Conversion failed: %v", err)
		return util.ErrorIO
	}

	if outputFile != nil {
		if err := outputFile.Close(); err != nil {
			log.Errorf("Failed to close %s: %v", outputFile.Name(), err)
			return util.ErrorIO
		}
	}

	if FlagSummary {
		if FlagJson {
			fmt.Fprintln(os.Stderr, FormatSummaryJson(stats))
		} else {
			FormatSummaryTable(stats, os.Stderr)
		}
	}
	return util.ErrorSuccess
}
