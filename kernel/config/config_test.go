package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hwguard.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Bus != "system" {
		t.Errorf("expected system bus, got %s", cfg.Bus)
	}
	r, err := cfg.Resource("processor")
	if err != nil {
		t.Fatalf("expected processor kind: %v", err)
	}
	if r.Name != "Processor" {
		t.Errorf("expected Processor, got %s", r.Name)
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeTempConfig(t, `
bus: session
resources:
  fabric-adapter:
    name: FabricAdapter
    interfaces:
      - xyz.openbmc_project.Inventory.Item.FabricAdapter
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Bus != "session" {
		t.Errorf("expected session bus, got %s", cfg.Bus)
	}
	if _, err := cfg.Resource("fabric-adapter"); err != nil {
		t.Errorf("expected fabric-adapter kind: %v", err)
	}
	if _, err := cfg.Resource("memory"); err != nil {
		t.Errorf("defaults must survive the merge: %v", err)
	}
}

func TestLoad_RejectsEmptyInterfaces(t *testing.T) {
	path := writeTempConfig(t, `
resources:
  broken:
    name: Broken
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for kind without interfaces")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/hwguard.yml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResource_UnknownKind(t *testing.T) {
	if _, err := Defaults().Resource("gpu"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
