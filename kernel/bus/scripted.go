package bus

import (
	"context"
	"fmt"
	"sync"
)

// ScriptedBus is an in-memory Client for testing. Results are scripted per
// call tuple; every invocation is recorded so tests can assert which objects
// were (or were not) targeted.
type ScriptedBus struct {
	mu          sync.Mutex
	results     map[string]scriptedResult
	invocations []Invocation
}

// Invocation is one recorded call against the scripted bus.
type Invocation struct {
	Service string
	Path    ObjectPath
	Iface   string
	Method  string
	Args    []interface{}
}

type scriptedResult struct {
	value interface{}
	body  []interface{}
	err   error
}

func NewScriptedBus() *ScriptedBus {
	return &ScriptedBus{results: make(map[string]scriptedResult)}
}

func tupleKey(service string, path ObjectPath, iface, method string) string {
	return fmt.Sprintf("%s|%s|%s.%s", service, path, iface, method)
}

// StubCall scripts the result of a method call.
func (s *ScriptedBus) StubCall(service string, path ObjectPath, iface, method string, body []interface{}, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[tupleKey(service, path, iface, method)] = scriptedResult{body: body, err: err}
}

// StubProperty scripts the result of a single property read.
func (s *ScriptedBus) StubProperty(service string, path ObjectPath, iface, property string, value interface{}, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[tupleKey(service, path, iface, "Get:"+property)] = scriptedResult{value: value, err: err}
}

// StubAllProperties scripts the result of a full property-set read.
func (s *ScriptedBus) StubAllProperties(service string, path ObjectPath, iface string, props map[string]interface{}, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[tupleKey(service, path, iface, "GetAll")] = scriptedResult{value: props, err: err}
}

func (s *ScriptedBus) Call(ctx context.Context, service string, path ObjectPath, iface, method string, args ...interface{}) ([]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invocations = append(s.invocations, Invocation{Service: service, Path: path, Iface: iface, Method: method, Args: args})
	r, ok := s.results[tupleKey(service, path, iface, method)]
	if !ok {
		return nil, &CallError{Msg: fmt.Sprintf("no scripted result for %s", tupleKey(service, path, iface, method))}
	}
	return r.body, r.err
}

func (s *ScriptedBus) GetProperty(ctx context.Context, service string, path ObjectPath, iface, property string) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invocations = append(s.invocations, Invocation{Service: service, Path: path, Iface: iface, Method: "Get:" + property})
	r, ok := s.results[tupleKey(service, path, iface, "Get:"+property)]
	if !ok {
		return nil, &CallError{Msg: fmt.Sprintf("no scripted result for %s", tupleKey(service, path, iface, "Get:"+property))}
	}
	return r.value, r.err
}

func (s *ScriptedBus) GetAllProperties(ctx context.Context, service string, path ObjectPath, iface string) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invocations = append(s.invocations, Invocation{Service: service, Path: path, Iface: iface, Method: "GetAll"})
	r, ok := s.results[tupleKey(service, path, iface, "GetAll")]
	if !ok {
		return nil, &CallError{Msg: fmt.Sprintf("no scripted result for %s", tupleKey(service, path, iface, "GetAll"))}
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.value.(map[string]interface{}), nil
}

// Invocations returns a copy of every recorded call, in order.
func (s *ScriptedBus) Invocations() []Invocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Invocation, len(s.invocations))
	copy(out, s.invocations)
	return out
}

// Targeted reports whether any recorded call addressed the given object path.
func (s *ScriptedBus) Targeted(path ObjectPath) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invocations {
		if inv.Path == path {
			return true
		}
	}
	return false
}
