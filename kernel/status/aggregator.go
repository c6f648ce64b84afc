package status

import (
	"context"
	"time"

	"github.com/openbmc-tools/hwguard/kernel/bus"
	"github.com/openbmc-tools/hwguard/kernel/catalog"
	"github.com/openbmc-tools/hwguard/kernel/inventory"
	"github.com/openbmc-tools/hwguard/kernel/rest"
	"github.com/sirupsen/logrus"
)

const (
	eventLogRole = "event_log"
	errorLogRole = "error_log"

	// statusEventFolder is the parent segment marking the hardware isolation
	// status event objects among a resource's event_log endpoints.
	statusEventFolder = "hw_isolation_status"

	logEntryURIBase = "/redfish/v1/Systems/system/LogServices/EventLog/Entries/"
)

var severityByValue = map[string]string{
	"xyz.openbmc_project.Logging.Event.SeverityLevel.Critical": "Critical",
	"xyz.openbmc_project.Logging.Event.SeverityLevel.Warning":  "Warning",
	"xyz.openbmc_project.Logging.Event.SeverityLevel.Unknown":  "Warning",
	"xyz.openbmc_project.Logging.Event.SeverityLevel.Ok":       "OK",
}

// Aggregator folds a resource's isolation status event into a normalized
// status/condition block.
type Aggregator struct {
	bus bus.Client
}

func NewAggregator(c bus.Client) *Aggregator {
	return &Aggregator{bus: c}
}

// Render discovers the status event associated with resourcePath and folds
// its properties into the Status block of resp. A resource with no status
// event renders nothing; that is not a failure.
func (a *Aggregator) Render(ctx context.Context, resourcePath bus.ObjectPath, resp *rest.Response) {
	endpoints, err := bus.GetAssociationEndpoints(ctx, a.bus, resourcePath.Join(eventLogRole))
	if err != nil {
		if bus.IsNoSuchObject(err) {
			// no event, so the hardware status needs no condition
			return
		}
		logrus.WithError(err).Errorf("unable to get the status event for resource [%s]", resourcePath)
		resp.SetOutcome(catalog.InternalError())
		return
	}

	var eventObj bus.ObjectPath
	found := false
	for _, endpoint := range endpoints {
		if endpoint.Parent().Filename() == statusEventFolder {
			eventObj = endpoint
			found = true
			break
		}
	}
	if !found {
		return
	}

	service, err := inventory.LocateOwner(ctx, a.bus, eventObj, bus.LoggingEventInterface)
	if err != nil {
		logrus.WithError(err).Errorf("unable to locate the owner of status event [%s]", eventObj)
		resp.SetOutcome(catalog.InternalError())
		return
	}

	props, err := a.bus.GetAllProperties(ctx, service, eventObj, "")
	if err != nil {
		logrus.WithError(err).Errorf("unable to get the properties of status event [%s]", eventObj)
		resp.SetOutcome(catalog.InternalError())
		return
	}

	// The event only exists while the respective hardware is not functional.
	block := resp.StatusBlock()
	block["State"] = "Disabled"
	condition := make(map[string]interface{})
	block["Conditions"] = []interface{}{condition}

	for name, value := range props {
		switch name {
		case "Severity":
			if !a.setSeverity(eventObj, value, condition, resp) {
				return
			}
		case "Timestamp":
			ts, ok := bus.AsUint64(value)
			if !ok {
				logrus.Errorf("unexpected Timestamp type %T on status event [%s]", value, eventObj)
				resp.SetOutcome(catalog.InternalError())
				return
			}
			condition["Timestamp"] = time.Unix(int64(ts), 0).UTC().Format(time.RFC3339)
		case "Message":
			if !a.setMessage(eventObj, value, condition, resp) {
				return
			}
		case "Associations":
			assocs, ok := bus.AsAssociations(value)
			if !ok {
				logrus.Errorf("unexpected Associations type %T on status event [%s]", value, eventObj)
				resp.SetOutcome(catalog.InternalError())
				return
			}
			// only one condition slot exists, so the last error_log wins
			for _, assoc := range assocs {
				if assoc.Forward == errorLogRole {
					condition["LogEntry"] = map[string]interface{}{
						"@odata.id": logEntryURIBase + assoc.Endpoint.Filename(),
					}
				}
			}
		}
	}
}

func (a *Aggregator) setSeverity(eventObj bus.ObjectPath, value interface{}, condition map[string]interface{}, resp *rest.Response) bool {
	raw, ok := bus.AsString(value)
	if !ok {
		logrus.Errorf("unexpected Severity type %T on status event [%s]", value, eventObj)
		resp.SetOutcome(catalog.InternalError())
		return false
	}
	severity, ok := severityByValue[raw]
	if !ok {
		logrus.Errorf("unsupported severity [%s] on status event [%s]", raw, eventObj)
		resp.SetOutcome(catalog.InternalError())
		return false
	}
	condition["Severity"] = severity
	return true
}

func (a *Aggregator) setMessage(eventObj bus.ObjectPath, value interface{}, condition map[string]interface{}, resp *rest.Response) bool {
	reason, ok := bus.AsString(value)
	if !ok {
		logrus.Errorf("unexpected Message type %T on status event [%s]", value, eventObj)
		resp.SetOutcome(catalog.InternalError())
		return false
	}
	msg, ok := catalog.GetMessage(catalog.HardwareIsolationReasonID)
	if !ok {
		logrus.Error("the HardwareIsolationReason message is not registered")
		resp.SetOutcome(catalog.InternalError())
		return false
	}
	args := []string{reason}
	condition["Message"] = msg.Format(args...)
	condition["MessageArgs"] = args
	condition["MessageId"] = catalog.HardwareIsolationReasonID
	return true
}
