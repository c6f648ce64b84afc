/*
	(c) Copyright Contributors to the hwguard project.

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

	https://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package subcmd

import (
	"os"

	"github.com/openbmc-tools/hwguard/kernel/bus"
	"github.com/openbmc-tools/hwguard/kernel/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var RootCmd = &cobra.Command{
	Use:   "hwguard",
	Short: "Hardware isolation management for BMC-class systems",
	Long: `hwguard drives hardware isolation (guarding) of inventory resources
through the platform's hardware isolation service: resources can be excluded
from system boot without being physically removed, and their isolation status
can be inspected as normalized status conditions.`,
}

var (
	verbose    bool
	configPath string
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML configuration file")

	cobra.OnInitialize(func() {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors: term.IsTerminal(int(os.Stdout.Fd())),
		})
	})
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Defaults(), nil
	}
	return config.Load(configPath)
}

func connect(cfg *config.Config) (*bus.SystemBus, error) {
	if cfg.Bus == "session" {
		return bus.ConnectSession()
	}
	return bus.ConnectSystem()
}
