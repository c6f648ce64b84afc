package inventory

import (
	"context"
	"testing"

	"github.com/openbmc-tools/hwguard/kernel/bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubSubTreePaths(s *bus.ScriptedBus, paths []string) {
	s.StubCall(bus.MapperService, bus.MapperPath, bus.MapperInterface, "GetSubTreePaths",
		[]interface{}{paths}, nil)
}

func stubOwners(s *bus.ScriptedBus, owners map[string][]string) {
	s.StubCall(bus.MapperService, bus.MapperPath, bus.MapperInterface, "GetObject",
		[]interface{}{owners}, nil)
}

func TestResolve_Match(t *testing.T) {
	s := bus.NewScriptedBus()
	stubSubTreePaths(s, []string{
		"/xyz/openbmc_project/inventory/system/cpu1",
		"/xyz/openbmc_project/inventory/system/cpu0",
	})

	r := NewResolver(s)
	path, err := r.Resolve(context.Background(), bus.InventoryRoot, []string{"some.iface"}, "cpu0")
	require.NoError(t, err)
	assert.Equal(t, bus.ObjectPath("/xyz/openbmc_project/inventory/system/cpu0"), path)
}

func TestResolve_NotFound(t *testing.T) {
	s := bus.NewScriptedBus()
	stubSubTreePaths(s, []string{"/xyz/openbmc_project/inventory/system/cpu0"})

	r := NewResolver(s)
	_, err := r.Resolve(context.Background(), bus.InventoryRoot, nil, "dimm12")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_TransportError(t *testing.T) {
	s := bus.NewScriptedBus()
	s.StubCall(bus.MapperService, bus.MapperPath, bus.MapperInterface, "GetSubTreePaths",
		nil, &bus.CallError{Msg: "mapper unavailable"})

	r := NewResolver(s)
	_, err := r.Resolve(context.Background(), bus.InventoryRoot, nil, "cpu0")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestLocateOwner_Single(t *testing.T) {
	s := bus.NewScriptedBus()
	stubOwners(s, map[string][]string{"xyz.svc.A": {bus.CreateInterface}})

	service, err := LocateOwner(context.Background(), s, bus.HardwareIsolationRoot, bus.CreateInterface)
	require.NoError(t, err)
	assert.Equal(t, "xyz.svc.A", service)
}

func TestLocateOwner_Empty(t *testing.T) {
	s := bus.NewScriptedBus()
	stubOwners(s, map[string][]string{})

	_, err := LocateOwner(context.Background(), s, bus.HardwareIsolationRoot, bus.CreateInterface)
	require.Error(t, err)
}

func TestLocateOwner_Multiple(t *testing.T) {
	s := bus.NewScriptedBus()
	stubOwners(s, map[string][]string{
		"xyz.svc.A": {bus.CreateInterface},
		"xyz.svc.B": {bus.CreateInterface},
	})

	_, err := LocateOwner(context.Background(), s, bus.HardwareIsolationRoot, bus.CreateInterface)
	require.Error(t, err)
}

func TestLocateOwner_EmptyName(t *testing.T) {
	s := bus.NewScriptedBus()
	stubOwners(s, map[string][]string{"": {bus.CreateInterface}})

	_, err := LocateOwner(context.Background(), s, bus.HardwareIsolationRoot, bus.CreateInterface)
	require.Error(t, err)
}
