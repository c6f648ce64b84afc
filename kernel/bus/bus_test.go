package bus

import (
	"context"
	"testing"
)

func TestObjectPath_Filename(t *testing.T) {
	cases := []struct {
		path     ObjectPath
		expected string
	}{
		{"/xyz/openbmc_project/inventory/system/chassis/motherboard/cpu0", "cpu0"},
		{"/xyz/openbmc_project/inventory/", "inventory"},
		{"/", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := c.path.Filename(); got != c.expected {
			t.Errorf("Filename(%q): expected %q, got %q", c.path, c.expected, got)
		}
	}
}

func TestObjectPath_Parent(t *testing.T) {
	p := ObjectPath("/a/b/c")
	if p.Parent() != "/a/b" {
		t.Errorf("expected /a/b, got %s", p.Parent())
	}
	if p.Parent().Parent() != "/a" {
		t.Errorf("expected /a, got %s", p.Parent().Parent())
	}
	if ObjectPath("/a").Parent() != "/" {
		t.Errorf("expected /, got %s", ObjectPath("/a").Parent())
	}
}

func TestObjectPath_Join(t *testing.T) {
	p := ObjectPath("/a/b")
	if p.Join("event_log") != "/a/b/event_log" {
		t.Errorf("unexpected join result: %s", p.Join("event_log"))
	}
}

func TestErrorName(t *testing.T) {
	err := &CallError{Name: "xyz.openbmc_project.Common.Error.NotAllowed", Msg: "nope"}
	if ErrorName(err) != "xyz.openbmc_project.Common.Error.NotAllowed" {
		t.Errorf("unexpected error name: %s", ErrorName(err))
	}
	if ErrorName(context.Canceled) != "" {
		t.Error("expected empty name for non-call error")
	}
}

func TestIsNoSuchObject(t *testing.T) {
	if !IsNoSuchObject(&CallError{Errno: EBADR}) {
		t.Error("EBADR should mean no such object")
	}
	if !IsNoSuchObject(&CallError{Name: "org.freedesktop.DBus.Error.UnknownObject"}) {
		t.Error("UnknownObject should mean no such object")
	}
	if IsNoSuchObject(&CallError{Name: "xyz.openbmc_project.Common.Error.NotAllowed"}) {
		t.Error("NotAllowed must not be treated as absence")
	}
	if IsNoSuchObject(context.Canceled) {
		t.Error("non-call errors must not be treated as absence")
	}
}

func TestGetSubTreePaths(t *testing.T) {
	s := NewScriptedBus()
	s.StubCall(MapperService, MapperPath, MapperInterface, "GetSubTreePaths",
		[]interface{}{[]string{"/inv/cpu0", "/inv/cpu1"}}, nil)

	paths, err := GetSubTreePaths(context.Background(), s, InventoryRoot, 0, []string{"some.iface"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 || paths[0] != "/inv/cpu0" || paths[1] != "/inv/cpu1" {
		t.Errorf("unexpected paths: %v", paths)
	}
}

func TestGetObject(t *testing.T) {
	s := NewScriptedBus()
	s.StubCall(MapperService, MapperPath, MapperInterface, "GetObject",
		[]interface{}{map[string][]string{"xyz.svc.A": {"some.iface"}}}, nil)

	owners, err := GetObject(context.Background(), s, HardwareIsolationRoot, []string{CreateInterface})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(owners) != 1 || owners[0].Service != "xyz.svc.A" {
		t.Errorf("unexpected owners: %v", owners)
	}
}

func TestGetAssociationEndpoints(t *testing.T) {
	s := NewScriptedBus()
	s.StubProperty(MapperService, "/inv/cpu0/isolated_hw_entry", AssociationInterface, "endpoints",
		[]string{"/e/1", "/e/2"}, nil)

	endpoints, err := GetAssociationEndpoints(context.Background(), s, "/inv/cpu0/isolated_hw_entry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(endpoints) != 2 || endpoints[1] != "/e/2" {
		t.Errorf("unexpected endpoints: %v", endpoints)
	}
}

func TestGetAssociationEndpoints_BadShape(t *testing.T) {
	s := NewScriptedBus()
	s.StubProperty(MapperService, "/inv/cpu0/isolated_hw_entry", AssociationInterface, "endpoints",
		uint64(42), nil)

	if _, err := GetAssociationEndpoints(context.Background(), s, "/inv/cpu0/isolated_hw_entry"); err == nil {
		t.Fatal("expected error for mis-typed endpoints property")
	}
}

func TestAsAssociations(t *testing.T) {
	raw := [][]interface{}{
		{"error_log", "isolated_hw", "/logging/entry/1"},
	}
	assocs, ok := AsAssociations(raw)
	if !ok {
		t.Fatal("expected tuples to decode")
	}
	if assocs[0].Forward != "error_log" || assocs[0].Endpoint != "/logging/entry/1" {
		t.Errorf("unexpected association: %+v", assocs[0])
	}

	if _, ok := AsAssociations([][]interface{}{{"only", "two"}}); ok {
		t.Error("expected short tuple to be rejected")
	}
}
