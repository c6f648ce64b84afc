package isolation

import (
	"context"

	"github.com/openbmc-tools/hwguard/kernel/bus"
	"github.com/openbmc-tools/hwguard/kernel/catalog"
	"github.com/openbmc-tools/hwguard/kernel/inventory"
	"github.com/openbmc-tools/hwguard/kernel/rest"
	"github.com/openziti/foundation/v2/stringz"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Request is the complete input to one isolation orchestration. Enabled=false
// requests isolation, Enabled=true requests de-isolation, mirroring the
// resource's Enabled property on the management surface. Interfaces is the
// capability set used to find the resource in the inventory.
type Request struct {
	ResourceName string
	ResourceID   string
	Enabled      bool
	Interfaces   []string
}

// Orchestrator drives isolate/de-isolate state transitions against the
// hardware isolation service.
type Orchestrator struct {
	bus      bus.Client
	resolver *inventory.Resolver
}

func NewOrchestrator(c bus.Client) *Orchestrator {
	return &Orchestrator{bus: c, resolver: inventory.NewResolver(c)}
}

// Process handles one isolation request end to end: resolve the resource,
// locate the isolation service, then isolate or de-isolate. Exactly one
// outcome is written into resp on every path.
func (o *Orchestrator) Process(ctx context.Context, req Request, resp *rest.Response) {
	// resources that can be isolated also implement the enable/disable marker
	ifaces := req.Interfaces
	if !stringz.Contains(ifaces, bus.ObjectEnableInterface) {
		ifaces = append(append([]string{}, ifaces...), bus.ObjectEnableInterface)
	}

	path, err := o.resolver.Resolve(ctx, bus.InventoryRoot, ifaces, req.ResourceID)
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			resp.SetOutcome(catalog.ResourceNotFound(req.ResourceName, req.ResourceID))
			return
		}
		logrus.WithError(err).Errorf("unable to resolve resource [%s]", req.ResourceID)
		resp.SetOutcome(catalog.InternalError())
		return
	}

	service, err := inventory.LocateOwner(ctx, o.bus, bus.HardwareIsolationRoot, bus.CreateInterface)
	if err != nil {
		logrus.WithError(err).Error("unable to locate the hardware isolation service")
		resp.SetOutcome(catalog.InternalError())
		return
	}

	if req.Enabled {
		o.deisolate(ctx, path, service, resp)
	} else {
		o.isolate(ctx, req, path, service, resp)
	}
}
