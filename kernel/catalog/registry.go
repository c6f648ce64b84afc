package catalog

import (
	"strconv"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Message is a registry entry: a reason template plus its metadata. Templates
// carry %1..%N placeholders substituted left-to-right by the ordered argument
// list.
type Message struct {
	Description  string
	Template     string
	Severity     string
	NumberOfArgs int
	Resolution   string
}

// HardwareIsolationReasonID is the registry id the status aggregator expands
// event reasons under.
const HardwareIsolationReasonID = "OpenBMC.0.2.HardwareIsolationReason"

// The registry is read concurrently by every in-flight request chain.
var registry = cmap.New[Message]()

// RegisterMessage adds a message to the registry.
func RegisterMessage(id string, msg Message) {
	if !registry.SetIfAbsent(id, msg) {
		panic("RegisterMessage called twice for " + id)
	}
}

// GetMessage looks up a registered message by id.
func GetMessage(id string) (Message, bool) {
	return registry.Get(id)
}

// Format expands the message template with the given ordered arguments. Each
// %N placeholder is replaced by the Nth argument; a placeholder with no
// argument, or an argument with no placeholder, is left alone.
func (m Message) Format(args ...string) string {
	out := m.Template
	for i, arg := range args {
		placeholder := "%" + strconv.Itoa(i+1)
		out = strings.Replace(out, placeholder, arg, 1)
	}
	return out
}

func init() {
	RegisterMessage(HardwareIsolationReasonID, Message{
		Description:  "Indicates the reason for the hardware isolation.",
		Template:     "%1",
		Severity:     "Warning",
		NumberOfArgs: 1,
		Resolution:   "None.",
	})
}
