// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package bridge

import (
	"encoding/json"
	"errors"

	"github.com/kamaranl/tiptapri/internal/logtarget"
)

// Frame types sent to websocket clients.
const (
	TypeResult = "Result"
	TypeError  = "Error"
	TypeLog    = "Log"
)

// Request is a command invocation sent by a frontend.
type Request struct {
	ID   string          `json:"id,omitempty"`
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Response answers one Request, or carries a log record pushed to the client.
type Response struct {
	ID      string            `json:"id,omitempty"`
	Type    string            `json:"type"`
	Result  *string           `json:"result,omitempty"`
	Code    int               `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Record  *logtarget.Record `json:"record,omitempty"`
}

// Invoker executes a command on behalf of the transport. The event loop
// implements it so that frontend calls are serialised with menu events.
type Invoker interface {
	Call(name string, args json.RawMessage) (string, error)
}

func resultFrame(id, result string) Response {
	return Response{ID: id, Type: TypeResult, Result: &result}
}

func errorFrame(id string, err error) Response {
	resp := Response{ID: id, Type: TypeError, Code: CodeInternal, Message: err.Error()}
	var berr *Error
	if errors.As(err, &berr) {
		resp.Code, resp.Message = berr.Code, berr.Message
	}
	return resp
}
