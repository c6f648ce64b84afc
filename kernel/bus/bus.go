package bus

import (
	"context"
	"fmt"
	"strings"
)

// Well-known names on the object bus. These are the remote contract and must
// not be changed without coordinating with the services that own them.
const (
	MapperService   = "xyz.openbmc_project.ObjectMapper"
	MapperPath      = ObjectPath("/xyz/openbmc_project/object_mapper")
	MapperInterface = "xyz.openbmc_project.ObjectMapper"

	InventoryRoot = ObjectPath("/xyz/openbmc_project/inventory")

	HardwareIsolationRoot = ObjectPath("/xyz/openbmc_project/hardware_isolation")
	CreateInterface       = "xyz.openbmc_project.HardwareIsolation.Create"
	ManualEntryType       = "xyz.openbmc_project.HardwareIsolation.Entry.Type.Manual"

	ObjectEnableInterface = "xyz.openbmc_project.Object.Enable"
	ObjectDeleteInterface = "xyz.openbmc_project.Object.Delete"

	AssociationInterface  = "xyz.openbmc_project.Association"
	LoggingEventInterface = "xyz.openbmc_project.Logging.Event"
)

// ObjectPath is a hierarchical bus object identifier. It is a plain value,
// copied freely along a call chain.
type ObjectPath string

func (p ObjectPath) String() string {
	return string(p)
}

// Filename returns the final path segment, or "" for the root or an empty path.
func (p ObjectPath) Filename() string {
	s := strings.TrimRight(string(p), "/")
	idx := strings.LastIndex(s, "/")
	if idx < 0 {
		return ""
	}
	return s[idx+1:]
}

// Parent returns the path with the final segment removed.
func (p ObjectPath) Parent() ObjectPath {
	s := strings.TrimRight(string(p), "/")
	idx := strings.LastIndex(s, "/")
	if idx <= 0 {
		return ObjectPath("/")
	}
	return ObjectPath(s[:idx])
}

// Join appends a segment to the path.
func (p ObjectPath) Join(segment string) ObjectPath {
	return ObjectPath(strings.TrimRight(string(p), "/") + "/" + segment)
}

// Owner is one service claiming an object, with the interfaces it implements
// there. Produced by the mapper's GetObject.
type Owner struct {
	Service    string
	Interfaces []string
}

// Association is a directed link between two objects, tagged with forward and
// reverse relation roles.
type Association struct {
	Forward  string
	Reverse  string
	Endpoint ObjectPath
}

// Client is the remote call primitive. Implementations must be safe for use by
// multiple independent call chains.
type Client interface {
	// Call invokes method on interface iface of the object at path owned by
	// service, returning the reply body values.
	Call(ctx context.Context, service string, path ObjectPath, iface, method string, args ...interface{}) ([]interface{}, error)

	// GetProperty reads a single property value.
	GetProperty(ctx context.Context, service string, path ObjectPath, iface, property string) (interface{}, error)

	// GetAllProperties reads the full property set of an object. An empty
	// iface selects all interfaces.
	GetAllProperties(ctx context.Context, service string, path ObjectPath, iface string) (map[string]interface{}, error)
}

// GetSubTreePaths asks the mapper for all object paths under root implementing
// every interface in ifaces. A depth of 0 means unbounded.
func GetSubTreePaths(ctx context.Context, c Client, root ObjectPath, depth int, ifaces []string) ([]ObjectPath, error) {
	body, err := c.Call(ctx, MapperService, MapperPath, MapperInterface, "GetSubTreePaths",
		string(root), depth, ifaces)
	if err != nil {
		return nil, err
	}
	if len(body) != 1 {
		return nil, fmt.Errorf("GetSubTreePaths: unexpected reply shape (%d values)", len(body))
	}
	raw, ok := asStrings(body[0])
	if !ok {
		return nil, fmt.Errorf("GetSubTreePaths: unexpected reply type %T", body[0])
	}
	paths := make([]ObjectPath, 0, len(raw))
	for _, s := range raw {
		paths = append(paths, ObjectPath(s))
	}
	return paths, nil
}

// GetObject asks the mapper which services implement ifaces at path.
func GetObject(ctx context.Context, c Client, path ObjectPath, ifaces []string) ([]Owner, error) {
	body, err := c.Call(ctx, MapperService, MapperPath, MapperInterface, "GetObject",
		string(path), ifaces)
	if err != nil {
		return nil, err
	}
	if len(body) != 1 {
		return nil, fmt.Errorf("GetObject: unexpected reply shape (%d values)", len(body))
	}
	owners, ok := asOwners(body[0])
	if !ok {
		return nil, fmt.Errorf("GetObject: unexpected reply type %T", body[0])
	}
	return owners, nil
}

// GetAssociationEndpoints reads the "endpoints" property of the association
// object at path. The mapper hosts association objects, so the read is always
// issued against the mapper service.
func GetAssociationEndpoints(ctx context.Context, c Client, path ObjectPath) ([]ObjectPath, error) {
	v, err := c.GetProperty(ctx, MapperService, path, AssociationInterface, "endpoints")
	if err != nil {
		return nil, err
	}
	raw, ok := asStrings(v)
	if !ok {
		return nil, fmt.Errorf("association %s: endpoints has unexpected type %T", path, v)
	}
	endpoints := make([]ObjectPath, 0, len(raw))
	for _, s := range raw {
		endpoints = append(endpoints, ObjectPath(s))
	}
	return endpoints, nil
}
