package inventory

import (
	"context"

	"github.com/openbmc-tools/hwguard/kernel/bus"
	"github.com/pkg/errors"
)

// ErrNotFound means the logical resource is absent from the inventory
// subtree. Absence is a normal outcome, not a transport failure; callers
// branch on it.
var ErrNotFound = errors.New("resource not found in inventory")

// Resolver finds the bus object backing a logical resource id.
type Resolver struct {
	Bus bus.Client
}

func NewResolver(c bus.Client) *Resolver {
	return &Resolver{Bus: c}
}

// Resolve scans the subtree under root for objects implementing every
// interface in ifaces and returns the one whose final path segment equals
// resourceID. Returns ErrNotFound when no object matches.
func (r *Resolver) Resolve(ctx context.Context, root bus.ObjectPath, ifaces []string, resourceID string) (bus.ObjectPath, error) {
	paths, err := bus.GetSubTreePaths(ctx, r.Bus, root, 0, ifaces)
	if err != nil {
		return "", errors.Wrapf(err, "unable to query inventory under %s", root)
	}
	for _, path := range paths {
		if path.Filename() == resourceID {
			return path, nil
		}
	}
	return "", ErrNotFound
}
