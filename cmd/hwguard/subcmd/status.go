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
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/openbmc-tools/hwguard/kernel/bus"
	"github.com/openbmc-tools/hwguard/kernel/inventory"
	"github.com/openbmc-tools/hwguard/kernel/rest"
	"github.com/openbmc-tools/hwguard/kernel/status"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	RootCmd.AddCommand(NewStatusCommand())
}

func NewStatusCommand() *cobra.Command {
	statusCmd := &StatusCommand{}

	cmd := &cobra.Command{
		Use:   "status <resource-id> [<resource-id>...]",
		Short: "Show the isolation status of hardware resources",
		Args:  cobra.MinimumNArgs(1),
		RunE:  statusCmd.run,
	}

	cmd.Flags().StringVarP(&statusCmd.Kind, "kind", "k", "processor", "resource kind (processor, memory, core, pcie-device)")

	return cmd
}

type StatusCommand struct {
	Kind string
}

type statusRow struct {
	id        string
	state     string
	severity  string
	message   string
	timestamp string
	logEntry  string
}

func (s *StatusCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	resource, err := cfg.Resource(s.Kind)
	if err != nil {
		return err
	}

	client, err := connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to the bus: %w", err)
	}
	defer func() { _ = client.Close() }()

	resolver := inventory.NewResolver(client)
	aggregator := status.NewAggregator(client)

	// status renders for different resources are independent request chains
	// and may run concurrently
	rows := make([]statusRow, len(args))
	group, ctx := errgroup.WithContext(cmd.Context())
	for i, id := range args {
		i, id := i, id
		group.Go(func() error {
			path, err := resolver.Resolve(ctx, bus.InventoryRoot, resource.Interfaces, id)
			if errors.Is(err, inventory.ErrNotFound) {
				rows[i] = statusRow{id: id, state: "Absent"}
				return nil
			}
			if err != nil {
				return err
			}

			resp := rest.NewResponse()
			aggregator.Render(ctx, path, resp)
			if resp.Terminal() {
				return errors.Errorf("status render failed for %s '%s': %s", resource.Name, id, resp.Outcome().Message)
			}
			rows[i] = buildRow(id, resp)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Id", "State", "Severity", "Message", "Timestamp", "Log Entry"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.id, row.state, row.severity, row.message, row.timestamp, row.logEntry})
	}
	t.Render()

	return nil
}

func buildRow(id string, resp *rest.Response) statusRow {
	row := statusRow{id: id, state: "Enabled"}

	block, ok := resp.Body["Status"].(map[string]interface{})
	if !ok {
		// no status event, the resource is functional
		return row
	}
	if state, ok := block["State"].(string); ok {
		row.state = state
	}
	conditions, ok := block["Conditions"].([]interface{})
	if !ok || len(conditions) == 0 {
		return row
	}
	condition, ok := conditions[0].(map[string]interface{})
	if !ok {
		return row
	}
	row.severity, _ = condition["Severity"].(string)
	row.message, _ = condition["Message"].(string)
	row.timestamp, _ = condition["Timestamp"].(string)
	if logEntry, ok := condition["LogEntry"].(map[string]interface{}); ok {
		row.logEntry, _ = logEntry["@odata.id"].(string)
	}
	return row
}
