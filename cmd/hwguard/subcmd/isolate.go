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
	"fmt"

	"github.com/openbmc-tools/hwguard/kernel/isolation"
	"github.com/openbmc-tools/hwguard/kernel/rest"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(NewIsolateCommand())
	RootCmd.AddCommand(NewDeisolateCommand())
}

func NewIsolateCommand() *cobra.Command {
	isolateCmd := &IsolateCommand{Enabled: false}

	cmd := &cobra.Command{
		Use:   "isolate <resource-id>",
		Short: "Isolate a hardware resource from system boot",
		Args:  cobra.ExactArgs(1),
		RunE:  isolateCmd.run,
	}

	cmd.Flags().StringVarP(&isolateCmd.Kind, "kind", "k", "processor", "resource kind (processor, memory, core, pcie-device)")

	return cmd
}

func NewDeisolateCommand() *cobra.Command {
	deisolateCmd := &IsolateCommand{Enabled: true}

	cmd := &cobra.Command{
		Use:   "deisolate <resource-id>",
		Short: "De-isolate a hardware resource so it rejoins system boot",
		Args:  cobra.ExactArgs(1),
		RunE:  deisolateCmd.run,
	}

	cmd.Flags().StringVarP(&deisolateCmd.Kind, "kind", "k", "processor", "resource kind (processor, memory, core, pcie-device)")

	return cmd
}

type IsolateCommand struct {
	Kind    string
	Enabled bool
}

func (i *IsolateCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	resource, err := cfg.Resource(i.Kind)
	if err != nil {
		return err
	}

	client, err := connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to the bus: %w", err)
	}
	defer func() { _ = client.Close() }()

	resp := rest.NewResponse()
	isolation.NewOrchestrator(client).Process(cmd.Context(), isolation.Request{
		ResourceName: resource.Name,
		ResourceID:   args[0],
		Enabled:      i.Enabled,
		Interfaces:   resource.Interfaces,
	}, resp)

	data, err := resp.JSON()
	if err != nil {
		return fmt.Errorf("failed to render outcome: %w", err)
	}
	fmt.Println(string(data))

	if resp.HTTPStatus() >= 400 {
		return fmt.Errorf("%s '%s': %s", resource.Name, args[0], resp.Outcome().Message)
	}
	logrus.Infof("%s '%s' %s", resource.Name, args[0], actionLabel(i.Enabled))
	return nil
}

func actionLabel(enabled bool) string {
	if enabled {
		return "de-isolated"
	}
	return "isolated"
}
