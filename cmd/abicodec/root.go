// Copyright © 2022 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "abicodec",
	Short: "Ethereum ABIv2 schema codec",
	Long:  `Encodes and decodes values against an Ethereum contract ABIv2 type schema string.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file (default: $HOME/.abicodec.yaml)")
	rootCmd.PersistentFlags().Bool("checksum", true, "emit EIP-55 checksummed addresses on decode")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("checksum", rootCmd.PersistentFlags().Lookup("checksum"))
	_ = viper.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".abicodec")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("ABICODEC")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config file: %s\n", err)
		}
	}

	if level, err := logrus.ParseLevel(viper.GetString("logLevel")); err == nil {
		logrus.SetLevel(level)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
