package isolation

import (
	"context"

	"github.com/openbmc-tools/hwguard/kernel/bus"
	"github.com/openbmc-tools/hwguard/kernel/catalog"
	"github.com/openbmc-tools/hwguard/kernel/rest"
	"github.com/sirupsen/logrus"
)

// Domain failures the isolation service reports for Create, mapped to the
// closed outcome set. Anything not in this table collapses to internal error.
var isolateFailures = map[string]func(req Request) catalog.Payload{
	"xyz.openbmc_project.Common.Error.InvalidArgument": func(Request) catalog.Payload {
		return catalog.PropertyValueIncorrect("@odata.id", "false")
	},
	"xyz.openbmc_project.Common.Error.NotAllowed": func(Request) catalog.Payload {
		return catalog.PropertyNotWritable("Enabled")
	},
	"xyz.openbmc_project.Common.Error.Unavailable": func(Request) catalog.Payload {
		return catalog.ResourceInStandby()
	},
	"xyz.openbmc_project.HardwareIsolation.Error.IsolatedAlready": func(req Request) catalog.Payload {
		return catalog.ResourceAlreadyExists("@odata.id", req.ResourceName, req.ResourceID)
	},
	"xyz.openbmc_project.Common.Error.TooManyResources": func(Request) catalog.Payload {
		return catalog.CreateLimitReachedForResource()
	},
}

// isolate creates a manually-triggered isolation entry for the resolved
// resource object.
func (o *Orchestrator) isolate(ctx context.Context, req Request, path bus.ObjectPath, service string, resp *rest.Response) {
	_, err := o.bus.Call(ctx, service, bus.HardwareIsolationRoot, bus.CreateInterface, "Create",
		path, bus.ManualEntryType)
	if err == nil {
		resp.SetOutcome(catalog.Success())
		return
	}

	logrus.WithError(err).Errorf("unable to isolate resource [%s]", path)
	name := bus.ErrorName(err)
	if build, ok := isolateFailures[name]; ok {
		resp.SetOutcome(build(req))
		return
	}
	if name != "" {
		logrus.Errorf("unsupported isolation error [%s], reporting internal error", name)
	}
	resp.SetOutcome(catalog.InternalError())
}
