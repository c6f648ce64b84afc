package catalog

import "net/http"

// Payload is one formatted outcome from the closed API vocabulary. The
// constructors below are the only way outcomes are produced; nothing outside
// this package invents message ids.
type Payload struct {
	MessageID  string   `json:"MessageId"`
	Message    string   `json:"Message"`
	Args       []string `json:"MessageArgs,omitempty"`
	Severity   string   `json:"MessageSeverity"`
	Resolution string   `json:"Resolution,omitempty"`
	HTTPStatus int      `json:"-"`
}

const registryVersion = "Base.1.8.1."

func format(template string, args []string) string {
	return Message{Template: template}.Format(args...)
}

// Success reports a completed request.
func Success() Payload {
	return Payload{
		MessageID:  registryVersion + "Success",
		Message:    "Successfully Completed Request",
		Severity:   "OK",
		Resolution: "None",
		HTTPStatus: http.StatusOK,
	}
}

// InternalError reports an unexpected condition. Internal topology is never
// leaked to API consumers; every unrecognized failure collapses to this.
func InternalError() Payload {
	return Payload{
		MessageID:  registryVersion + "InternalError",
		Message:    "The request failed due to an internal service error.  The service is still operational.",
		Severity:   "Critical",
		Resolution: "Resubmit the request.  If the problem persists, consider resetting the service.",
		HTTPStatus: http.StatusInternalServerError,
	}
}

// ResourceNotFound reports that no resource of the given type has the given id.
func ResourceNotFound(resourceType, resourceID string) Payload {
	args := []string{resourceType, resourceID}
	return Payload{
		MessageID:  registryVersion + "ResourceNotFound",
		Message:    format("The requested resource of type %1 named %2 was not found.", args),
		Args:       args,
		Severity:   "Critical",
		Resolution: "Provide a valid resource identifier and resubmit the request.",
		HTTPStatus: http.StatusNotFound,
	}
}

// PropertyValueIncorrect reports a property assignment the service rejected.
func PropertyValueIncorrect(property, value string) Payload {
	args := []string{property, value}
	return Payload{
		MessageID:  registryVersion + "PropertyValueIncorrect",
		Message:    format("The value %2 for the property %1 is not valid.", args),
		Args:       args,
		Severity:   "Warning",
		Resolution: "Correct the value for the property in the request body and resubmit the request if the operation failed.",
		HTTPStatus: http.StatusBadRequest,
	}
}

// PropertyNotWritable reports a write to a read-only property.
func PropertyNotWritable(property string) Payload {
	args := []string{property}
	return Payload{
		MessageID:  registryVersion + "PropertyNotWritable",
		Message:    format("The property %1 is a read only property and cannot be assigned a value.", args),
		Args:       args,
		Severity:   "Warning",
		Resolution: "Remove the property from the request body and resubmit the request if the operation failed.",
		HTTPStatus: http.StatusForbidden,
	}
}

// ResourceInStandby reports that the target is not in a power state that
// permits the operation.
func ResourceInStandby() Payload {
	return Payload{
		MessageID:  registryVersion + "ResourceInStandby",
		Message:    "The request could not be performed because the resource is in standby.",
		Severity:   "Critical",
		Resolution: "Ensure that the resource is in the correct power state and resubmit the request.",
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

// ResourceAlreadyExists reports a create of something that already exists.
func ResourceAlreadyExists(resourceType, property, value string) Payload {
	args := []string{resourceType, property, value}
	return Payload{
		MessageID:  registryVersion + "ResourceAlreadyExists",
		Message:    format("The requested resource of type %1 with the property %2 with the value %3 already exists.", args),
		Args:       args,
		Severity:   "Critical",
		Resolution: "Do not repeat the create operation as the resource has already been created.",
		HTTPStatus: http.StatusConflict,
	}
}

// CreateLimitReachedForResource reports that no more resources of this kind
// can be created.
func CreateLimitReachedForResource() Payload {
	return Payload{
		MessageID:  registryVersion + "CreateLimitReachedForResource",
		Message:    "The create operation failed because the resource has reached the limit of possible resources.",
		Severity:   "Critical",
		Resolution: "Either delete resources and resubmit the request if the operation failed or do not resubmit the request.",
		HTTPStatus: http.StatusBadRequest,
	}
}
