package server

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/vango-dev/tally/internal/errors"
)

// Frame types.
const (
	FrameClick  = "click"
	FrameRender = "render"
	FrameError  = "error"
)

// ClientFrame is a frame sent by the browser.
type ClientFrame struct {
	Type string `json:"type"`
	HID  string `json:"hid"`
}

// ServerFrame is a frame sent to the browser.
type ServerFrame struct {
	Type    string `json:"type"`
	Seq     uint64 `json:"seq,omitempty"`
	HTML    string `json:"html,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Event is a decoded client event waiting for the event loop.
type Event struct {
	Type     string
	HID      string
	Received time.Time
}

// DecodeEvent parses a client frame. Malformed JSON and frames without an
// HID fail with T301, unsupported types with T302.
func DecodeEvent(data []byte) (Event, error) {
	var f ClientFrame
	if err := json.Unmarshal(data, &f); err != nil {
		return Event{}, errors.New("T301").Wrap(err)
	}
	typ := strings.ToLower(f.Type)
	if typ != FrameClick {
		return Event{}, errors.New("T302").WithDetailf("type %q", f.Type)
	}
	if f.HID == "" {
		return Event{}, errors.New("T301").WithDetail("missing hid")
	}
	return Event{Type: typ, HID: f.HID, Received: time.Now()}, nil
}

func renderFrame(seq uint64, html string) ServerFrame {
	return ServerFrame{Type: FrameRender, Seq: seq, HTML: html}
}

// errorFrame turns err into an error frame, falling back to code when err
// carries none.
func errorFrame(err error, code string) ServerFrame {
	te := errors.FromError(err, code)
	return ServerFrame{Type: FrameError, Code: te.Code, Message: te.Message, Detail: te.Detail}
}
