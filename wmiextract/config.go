// Copyright (c) 2026 Fraunhofer AISEC
// Fraunhofer-Gesellschaft zur Foerderung der angewandten Forschung e.V.
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
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/jsonc"
	"github.com/urfave/cli/v3"
	"golang.org/x/exp/maps"

	"github.com/Fraunhofer-AISEC/wmiextract/internal"
)

type config struct {
	Names    []string `json:"names"`
	Literal  bool     `json:"literal"`
	OutDir   string   `json:"outDir"`
	Atomic   bool     `json:"atomic"`
	LogLevel string   `json:"logLevel"`
}

const (
	configFlag   = "config"
	nameFlag     = "name"
	literalFlag  = "literal"
	outFlag      = "out"
	noAtomicFlag = "no-atomic"
	logLevelFlag = "log-level"
)

var (
	// The WMI GUID mapping and the binary MOF data blocks
	defaultNames = []string{"_WDG", "WQ[A-Z]{2}"}

	logLevels = map[string]logrus.Level{
		"panic": logrus.PanicLevel,
		"fatal": logrus.FatalLevel,
		"error": logrus.ErrorLevel,
		"warn":  logrus.WarnLevel,
		"info":  logrus.InfoLevel,
		"debug": logrus.DebugLevel,
		"trace": logrus.TraceLevel,
	}

	log = logrus.WithField("service", "wmiextract")
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  configFlag,
			Usage: "JSON configuration file (comments allowed)",
		},
		&cli.StringSliceFlag{
			Name: nameFlag,
			Usage: fmt.Sprintf("buffer name or name pattern to extract, can be repeated (default: %v)",
				strings.Join(defaultNames, ", ")),
		},
		&cli.BoolFlag{
			Name:  literalFlag,
			Usage: "match buffer names literally instead of as patterns",
		},
		&cli.StringFlag{
			Name:  outFlag,
			Usage: "output directory (default: current working directory)",
		},
		&cli.BoolFlag{
			Name:  noAtomicFlag,
			Usage: "write output files directly instead of via temporary files",
		},
		&cli.StringFlag{
			Name:  logLevelFlag,
			Usage: fmt.Sprintf("set log level. Possible: %v", strings.Join(maps.Keys(logLevels), ",")),
		},
	}
}

// getConfig parses the configuration from the optional configuration file
// and the commandline flags. Commandline flags supersede configuration file
// options.
func getConfig(cmd *cli.Command) (*config, error) {

	c := &config{
		Names:    slices.Clone(defaultNames),
		OutDir:   ".",
		Atomic:   true,
		LogLevel: "info",
	}

	if cmd.IsSet(configFlag) {
		file, err := internal.GetFilePath(cmd.String(configFlag))
		if err != nil {
			return nil, fmt.Errorf("failed to find config file: %w", err)
		}
		log.Infof("Loading config from file %v", file)
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %v: %w", file, err)
		}
		err = json.Unmarshal(jsonc.ToJSON(data), c)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %v: %w", file, err)
		}
	}

	if cmd.IsSet(nameFlag) {
		c.Names = cmd.StringSlice(nameFlag)
	}
	if cmd.IsSet(literalFlag) {
		c.Literal = cmd.Bool(literalFlag)
	}
	if cmd.IsSet(outFlag) {
		c.OutDir = cmd.String(outFlag)
	}
	if cmd.IsSet(noAtomicFlag) {
		c.Atomic = !cmd.Bool(noAtomicFlag)
	}
	if cmd.IsSet(logLevelFlag) {
		c.LogLevel = cmd.String(logLevelFlag)
	}

	if len(c.Names) == 0 {
		return nil, fmt.Errorf("no buffer names specified")
	}

	setLogLevel(c.LogLevel)

	c.Print()

	return c, nil
}

func setLogLevel(level string) {
	if level == "" {
		logrus.SetLevel(logrus.InfoLevel)
		return
	}
	l, ok := logLevels[strings.ToLower(level)]
	if !ok {
		log.Warnf("LogLevel %v does not exist. Default to info level", level)
		l = logrus.InfoLevel
	}
	logrus.SetLevel(l)
}

func (c *config) Print() {
	log.Debugf("Using the following configuration:")
	log.Debugf("\tNames    : %v", strings.Join(c.Names, ", "))
	log.Debugf("\tLiteral  : %v", c.Literal)
	log.Debugf("\tOutDir   : %v", c.OutDir)
	log.Debugf("\tAtomic   : %v", c.Atomic)
	log.Debugf("\tLogLevel : %v", c.LogLevel)
}
