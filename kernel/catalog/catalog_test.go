package catalog

import (
	"testing"
)

func TestMessage_Format(t *testing.T) {
	m := Message{Template: "Reason: %1 detected"}
	if got := m.Format("overheat"); got != "Reason: overheat detected" {
		t.Errorf("expected 'Reason: overheat detected', got '%s'", got)
	}
}

func TestMessage_Format_Ordered(t *testing.T) {
	m := Message{Template: "The requested resource of type %1 named %2 was not found."}
	got := m.Format("Processor", "cpu0")
	expected := "The requested resource of type Processor named cpu0 was not found."
	if got != expected {
		t.Errorf("expected '%s', got '%s'", expected, got)
	}
}

func TestMessage_Format_MissingArg(t *testing.T) {
	m := Message{Template: "%1 and %2"}
	if got := m.Format("one"); got != "one and %2" {
		t.Errorf("unexpected result: '%s'", got)
	}
}

func TestGetMessage_HardwareIsolationReason(t *testing.T) {
	m, ok := GetMessage(HardwareIsolationReasonID)
	if !ok {
		t.Fatal("expected HardwareIsolationReason to be registered")
	}
	if m.NumberOfArgs != 1 {
		t.Errorf("expected 1 arg, got %d", m.NumberOfArgs)
	}
	if got := m.Format("DIMM has a fault"); got != "DIMM has a fault" {
		t.Errorf("unexpected expansion: '%s'", got)
	}
}

func TestResourceNotFound(t *testing.T) {
	p := ResourceNotFound("Processor", "cpu0")
	if p.Message != "The requested resource of type Processor named cpu0 was not found." {
		t.Errorf("unexpected message: '%s'", p.Message)
	}
	if len(p.Args) != 2 || p.Args[0] != "Processor" || p.Args[1] != "cpu0" {
		t.Errorf("arguments not echoed verbatim: %v", p.Args)
	}
	if p.HTTPStatus != 404 {
		t.Errorf("expected 404, got %d", p.HTTPStatus)
	}
}

func TestResourceAlreadyExists(t *testing.T) {
	p := ResourceAlreadyExists("@odata.id", "Processor", "cpu0")
	if len(p.Args) != 3 || p.Args[1] != "Processor" || p.Args[2] != "cpu0" {
		t.Errorf("unexpected args: %v", p.Args)
	}
	if p.MessageID != "Base.1.8.1.ResourceAlreadyExists" {
		t.Errorf("unexpected message id: %s", p.MessageID)
	}
}

func TestSuccessSeverity(t *testing.T) {
	if Success().Severity != "OK" {
		t.Error("success must carry OK severity")
	}
	if InternalError().Severity != "Critical" {
		t.Error("internal error must carry Critical severity")
	}
}
