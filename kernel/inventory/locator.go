package inventory

import (
	"context"

	"github.com/openbmc-tools/hwguard/kernel/bus"
	"github.com/pkg/errors"
)

// LocateOwner returns the single service implementing iface at path. The
// isolation and event capabilities are singleton-owned; zero or multiple
// owners is a deployment fault, not a retryable condition.
func LocateOwner(ctx context.Context, c bus.Client, path bus.ObjectPath, iface string) (string, error) {
	owners, err := bus.GetObject(ctx, c, path, []string{iface})
	if err != nil {
		return "", errors.Wrapf(err, "unable to look up the owner of %s at %s", iface, path)
	}
	if len(owners) == 0 {
		return "", errors.Errorf("no service implements %s at %s", iface, path)
	}
	if len(owners) > 1 {
		return "", errors.Errorf("more than one service implements %s at %s", iface, path)
	}
	if owners[0].Service == "" {
		return "", errors.Errorf("the owner of %s at %s resolved to an empty name", iface, path)
	}
	return owners[0].Service, nil
}
