package isolation

import (
	"context"

	"github.com/openbmc-tools/hwguard/kernel/bus"
	"github.com/openbmc-tools/hwguard/kernel/catalog"
	"github.com/openbmc-tools/hwguard/kernel/rest"
	"github.com/sirupsen/logrus"
)

// isolatedEntryRole is the association role linking a resource to its
// isolation entry objects.
const isolatedEntryRole = "isolated_hw_entry"

// Domain failures the isolation service reports for Delete.
var deisolateFailures = map[string]func() catalog.Payload{
	"xyz.openbmc_project.Common.Error.NotAllowed": func() catalog.Payload {
		return catalog.PropertyNotWritable("Entry")
	},
	"xyz.openbmc_project.Common.Error.Unavailable": func() catalog.Payload {
		return catalog.ResourceInStandby()
	},
}

// deisolate deletes the resource's active isolation entry. The isolation
// manager may mark older entries resolved instead of deleting them, appending
// a fresh entry each time, so the last association endpoint is the
// authoritative one.
func (o *Orchestrator) deisolate(ctx context.Context, path bus.ObjectPath, service string, resp *rest.Response) {
	endpoints, err := bus.GetAssociationEndpoints(ctx, o.bus, path.Join(isolatedEntryRole))
	if err != nil {
		logrus.WithError(err).Errorf("unable to get the isolation entry for resource [%s]", path)
		resp.SetOutcome(catalog.InternalError())
		return
	}
	if len(endpoints) == 0 {
		// a de-isolation request against a resource with no known isolation
		// entry indicates inconsistent state
		logrus.Errorf("no isolation entry associated with resource [%s]", path)
		resp.SetOutcome(catalog.InternalError())
		return
	}
	entry := endpoints[len(endpoints)-1]

	_, err = o.bus.Call(ctx, service, entry, bus.ObjectDeleteInterface, "Delete")
	if err == nil {
		resp.SetOutcome(catalog.Success())
		return
	}

	logrus.WithError(err).Errorf("unable to de-isolate entry [%s]", entry)
	name := bus.ErrorName(err)
	if build, ok := deisolateFailures[name]; ok {
		resp.SetOutcome(build())
		return
	}
	if name != "" {
		logrus.Errorf("unsupported de-isolation error [%s], reporting internal error", name)
	}
	resp.SetOutcome(catalog.InternalError())
}
