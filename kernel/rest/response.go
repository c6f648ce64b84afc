package rest

import (
	"encoding/json"

	"github.com/openbmc-tools/hwguard/kernel/catalog"
	"github.com/sirupsen/logrus"
)

// Response collects the result of one request: the JSON document under
// construction plus at most one terminal outcome. It is owned by a single
// request chain; continuations of the same chain never run concurrently, so
// no locking is needed.
type Response struct {
	Body map[string]interface{}

	outcome  *catalog.Payload
	terminal bool
}

func NewResponse() *Response {
	return &Response{Body: make(map[string]interface{})}
}

// SetOutcome writes the terminal outcome. The first write wins; a second
// write indicates a bug in the calling chain and is dropped with a log entry.
func (r *Response) SetOutcome(p catalog.Payload) {
	if r.terminal {
		logrus.Errorf("terminal outcome already written, dropping %s", p.MessageID)
		return
	}
	r.terminal = true
	r.outcome = &p

	info := map[string]interface{}{
		"@odata.type":     "#Message.v1_1_1.Message",
		"MessageId":       p.MessageID,
		"Message":         p.Message,
		"MessageArgs":     p.Args,
		"MessageSeverity": p.Severity,
		"Resolution":      p.Resolution,
	}
	if p.Severity == "OK" {
		r.Body["@Message.ExtendedInfo"] = []interface{}{info}
		return
	}
	r.Body["error"] = map[string]interface{}{
		"code":                  p.MessageID,
		"message":               p.Message,
		"@Message.ExtendedInfo": []interface{}{info},
	}
}

// Terminal reports whether an outcome has been written.
func (r *Response) Terminal() bool {
	return r.terminal
}

// Outcome returns the terminal outcome, or nil when none has been written.
func (r *Response) Outcome() *catalog.Payload {
	return r.outcome
}

// HTTPStatus returns the status code of the terminal outcome, or 200 when the
// request produced no outcome (pure status render).
func (r *Response) HTTPStatus() int {
	if r.outcome == nil {
		return 200
	}
	return r.outcome.HTTPStatus
}

// StatusBlock returns the "Status" subtree of the document, creating it on
// first use. The status aggregator folds conditions into this block.
func (r *Response) StatusBlock() map[string]interface{} {
	if block, ok := r.Body["Status"].(map[string]interface{}); ok {
		return block
	}
	block := make(map[string]interface{})
	r.Body["Status"] = block
	return block
}

// JSON renders the document.
func (r *Response) JSON() ([]byte, error) {
	return json.MarshalIndent(r.Body, "", "  ")
}
