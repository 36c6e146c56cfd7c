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

package util

import (
	"fmt"
	"io"
	"os"

	nested "github.com/antonfisher/nested-logrus-formatter"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Partition emitted for every translated queue directive.
	Partition string `yaml:"Partition"`
	// Initial job name before any -N directive is seen.
	DefaultJobName string `yaml:"DefaultJobName"`
}

var (
	DefaultConfigPath string
	DefaultPartition  string
	DefaultJobName    string
)

func init() {
	DefaultConfigPath = "/etc/pbs2slurm/config.yaml"
	DefaultPartition = "main"
	DefaultJobName = "JOB"
}

func DefaultConfig() *Config {
	return &Config{
		Partition:      DefaultPartition,
		DefaultJobName: DefaultJobName,
	}
}

// ParseConfig reads the YAML configuration at path. A missing file at the
// default path is not an error; the built-in defaults apply.
func ParseConfig(path string) (*Config, error) {
	config := DefaultConfig()

	confFile, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigPath {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(confFile, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if config.Partition == "" {
		config.Partition = DefaultPartition
	}
	if config.DefaultJobName == "" {
		config.DefaultJobName = DefaultJobName
	}
	return config, nil
}

func InitLogger() {
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&nested.Formatter{})
	// The converted script goes to stdout, diagnostics must not.
	log.SetOutput(os.Stderr)
}

// SetLogFile mirrors log output into a rotated file in addition to stderr.
func SetLogFile(path string) {
	log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	}))
}
