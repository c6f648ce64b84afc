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

	"github.com/openbmc-tools/hwguard/kernel/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(NewMCPServerCommand())
}

func NewMCPServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-server",
		Short: "Start MCP server for AI-driven hardware isolation",
		Long: `Start an MCP (Model Context Protocol) server that exposes hardware
isolation capabilities to AI assistants.

The server provides tools for:
  - isolate_resource: Isolate a hardware resource from system boot
  - deisolate_resource: De-isolate a previously isolated resource
  - get_hardware_status: Get the isolation status conditions of a resource

And resources:
  - hwguard://kinds: Resource kinds that support hardware isolation`,
		RunE: runMCPServer,
	}
}

func runMCPServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to the bus: %w", err)
	}
	defer func() { _ = client.Close() }()

	logrus.Info("starting MCP server on stdio...")
	server := mcp.NewHwGuardMCPServer(client, cfg)
	return server.ServeStdio()
}
