package bus

import (
	"context"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
)

const propertiesInterface = "org.freedesktop.DBus.Properties"

// SystemBus is the production Client, backed by a shared connection to the
// system bus.
type SystemBus struct {
	conn *dbus.Conn
}

// ConnectSystem opens a connection to the system bus.
func ConnectSystem() (*SystemBus, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to system bus")
	}
	return &SystemBus{conn: conn}, nil
}

// ConnectSession opens a connection to the session bus. Used by integration
// setups that run the isolation services on a private bus.
func ConnectSession() (*SystemBus, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to session bus")
	}
	return &SystemBus{conn: conn}, nil
}

func (b *SystemBus) Close() error {
	return b.conn.Close()
}

func (b *SystemBus) Call(ctx context.Context, service string, path ObjectPath, iface, method string, args ...interface{}) ([]interface{}, error) {
	converted := make([]interface{}, len(args))
	for i, arg := range args {
		// ObjectPath arguments must go out with the object-path signature,
		// not as plain strings
		if p, ok := arg.(ObjectPath); ok {
			converted[i] = dbus.ObjectPath(p)
		} else {
			converted[i] = arg
		}
	}
	obj := b.conn.Object(service, dbus.ObjectPath(path))
	call := obj.CallWithContext(ctx, iface+"."+method, 0, converted...)
	if call.Err != nil {
		return nil, wrapCallError(call.Err)
	}
	return call.Body, nil
}

func (b *SystemBus) GetProperty(ctx context.Context, service string, path ObjectPath, iface, property string) (interface{}, error) {
	obj := b.conn.Object(service, dbus.ObjectPath(path))
	call := obj.CallWithContext(ctx, propertiesInterface+".Get", 0, iface, property)
	if call.Err != nil {
		return nil, wrapCallError(call.Err)
	}
	var v dbus.Variant
	if err := call.Store(&v); err != nil {
		return nil, errors.Wrapf(err, "property %s.%s of %s has unexpected shape", iface, property, path)
	}
	return v.Value(), nil
}

func (b *SystemBus) GetAllProperties(ctx context.Context, service string, path ObjectPath, iface string) (map[string]interface{}, error) {
	obj := b.conn.Object(service, dbus.ObjectPath(path))
	call := obj.CallWithContext(ctx, propertiesInterface+".GetAll", 0, iface)
	if call.Err != nil {
		return nil, wrapCallError(call.Err)
	}
	var variants map[string]dbus.Variant
	if err := call.Store(&variants); err != nil {
		return nil, errors.Wrapf(err, "properties of %s have unexpected shape", path)
	}
	props := make(map[string]interface{}, len(variants))
	for name, v := range variants {
		props[name] = v.Value()
	}
	return props, nil
}

func wrapCallError(err error) error {
	dbusErr, ok := err.(dbus.Error)
	if !ok {
		return &CallError{Msg: err.Error()}
	}
	ce := &CallError{Name: dbusErr.Name}
	if len(dbusErr.Body) > 0 {
		if msg, ok := dbusErr.Body[0].(string); ok {
			ce.Msg = msg
		}
	}
	// sd-bus surfaces errno failures as System.Error.<NAME>
	if strings.HasPrefix(dbusErr.Name, "System.Error.") {
		if errno, ok := errnoByName[strings.TrimPrefix(dbusErr.Name, "System.Error.")]; ok {
			ce.Errno = errno
		}
	}
	return ce
}

var errnoByName = map[string]int{
	"EBADR": EBADR,
}
