// Package server implements the JSON-over-TCP compile service: each
// connection delivers one JSON request object; a compile request gets back
// one JSON reply, following spec.md §6's wire protocol.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/vesperlang/vesper/lang/compiler"
)

// Request is the single JSON object a connection sends.
type Request struct {
	Command string `json:"command"`
	Code    string `json:"code"`
}

// Reply is the single JSON object sent back. Exactly one of Object or Error
// is populated.
type Reply struct {
	Object string `json:"object,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Server accepts connections on Addr and runs each through one Request/
// Reply exchange.
type Server struct {
	Addr      string
	Assembler compiler.Assembler
	Log       io.Writer

	// AssembleTimeout bounds each compile request's call into the external
	// assembler. Zero means no deadline.
	AssembleTimeout time.Duration
}

// ListenAndServe blocks accepting connections until ctx is done or an
// Accept error occurs.
func (s *Server) ListenAndServe(ctx context.Context) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.Addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				return err
			}
		}
		go s.handle(ctx, conn)
	}
}

func (s *Server) logf(format string, args ...any) {
	if s.Log == nil {
		return
	}
	fmt.Fprintf(s.Log, format+"\n", args...)
}

// handle reads exactly one JSON request from conn, acts on it, and closes
// the connection. Only "compile" writes a JSON reply; "ping" is logged and
// gets none. Malformed JSON or an unknown command terminates the worker
// without a reply, per spec.md §6.
func (s *Server) handle(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	var req Request
	if err := json.NewDecoder(conn).Decode(&req); err != nil {
		s.logf("server: malformed request from %s: %v", conn.RemoteAddr(), err)
		return
	}

	switch req.Command {
	case "ping":
		s.logf("server: ping from %s", conn.RemoteAddr())

	case "compile":
		compileCtx := ctx
		if s.AssembleTimeout > 0 {
			var cancel context.CancelFunc
			compileCtx, cancel = context.WithTimeout(ctx, s.AssembleTimeout)
			defer cancel()
		}
		object, err := compiler.Compile(compileCtx, req.Code, s.Assembler)
		reply := Reply{Object: object}
		if err != nil {
			reply = Reply{Error: err.Error()}
		}
		if err := json.NewEncoder(conn).Encode(reply); err != nil {
			s.logf("server: writing reply to %s: %v", conn.RemoteAddr(), err)
		}

	default:
		s.logf("server: unknown command %q from %s", req.Command, conn.RemoteAddr())
	}
}
