// Package server runs the MCP stdio transport: a newline-delimited JSON-RPC
// 2.0 loop over stdin/stdout. All logging goes to stderr so the protocol
// stream stays clean.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dmarsters/author-style-mcp/internal/tools"
)

// maxLineBytes bounds a single request line. Blend specs and coordinate
// maps are small; 1 MiB leaves generous headroom.
const maxLineBytes = 1 << 20

// Server serves the tool registry over a stdio JSON-RPC session.
type Server struct {
	name     string
	version  string
	registry *tools.Registry
	logger   *zap.Logger

	in  io.Reader
	out io.Writer

	// writeMu serializes response writes; tool execution may move to
	// worker goroutines without changing the wire contract.
	writeMu sync.Mutex

	sessionID string
}

// Options configures a Server.
type Options struct {
	Name     string
	Version  string
	Registry *tools.Registry
	Logger   *zap.Logger

	// In and Out default to the process stdio when nil; tests inject
	// buffers here.
	In  io.Reader
	Out io.Writer
}

// New builds a Server from options.
func New(opts Options) (*Server, error) {
	if opts.Registry == nil {
		return nil, errors.New("server requires a tool registry")
	}
	if opts.In == nil || opts.Out == nil {
		return nil, errors.New("server requires input and output streams")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		name:      opts.Name,
		version:   opts.Version,
		registry:  opts.Registry,
		logger:    logger,
		in:        opts.In,
		out:       opts.Out,
		sessionID: uuid.NewString(),
	}, nil
}

// Run processes requests until the input stream closes or the context is
// canceled. A closed stream is a normal shutdown and returns nil.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("session started",
		zap.String("session_id", s.sessionID),
		zap.Int("tools", s.registry.Count()))

	lines := make(chan []byte)
	errCh := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
		for scanner.Scan() {
			line := make([]byte, len(scanner.Bytes()))
			copy(line, scanner.Bytes())
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errCh <- err
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session canceled", zap.String("session_id", s.sessionID))
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errCh:
					return fmt.Errorf("reading request stream: %w", err)
				default:
				}
				s.logger.Info("session closed", zap.String("session_id", s.sessionID))
				return nil
			}
			if len(line) == 0 {
				continue
			}
			s.handleLine(ctx, line)
		}
	}
}

func (s *Server) handleLine(ctx context.Context, line []byte) {
	var req rpcRequest
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Warn("unparseable request", zap.Error(err))
		s.writeError(json.RawMessage("null"), codeParseError, "parse error", err.Error())
		return
	}

	switch req.Method {
	case "initialize":
		s.handleInitialize(&req)
	case "notifications/initialized":
		// Client handshake acknowledgment; nothing to do.
	case "tools/list":
		s.handleToolsList(&req)
	case "tools/call":
		s.handleToolsCall(ctx, &req)
	case "ping":
		s.reply(&req, map[string]any{})
	default:
		if req.isNotification() {
			s.logger.Debug("ignoring notification", zap.String("method", req.Method))
			return
		}
		s.writeError(req.ID, codeMethodNotFound, "method not found", req.Method)
	}
}

func (s *Server) handleInitialize(req *rpcRequest) {
	s.reply(req, map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{
				"listChanged": false,
			},
		},
		"serverInfo": map[string]string{
			"name":    s.name,
			"version": s.version,
		},
	})
}

func (s *Server) handleToolsList(req *rpcRequest) {
	all := s.registry.All()
	descriptors := make([]toolDescriptor, 0, len(all))
	for _, tool := range all {
		descriptors = append(descriptors, toolDescriptor{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.Schema.JSONSchema(),
			Annotations: &toolAnnotations{ReadOnlyHint: tool.ReadOnly},
		})
	}
	s.reply(req, map[string]any{"tools": descriptors})
}

func (s *Server) handleToolsCall(ctx context.Context, req *rpcRequest) {
	var params callParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.writeError(req.ID, codeInvalidParams, "invalid tools/call params", err.Error())
		return
	}
	if params.Name == "" {
		s.writeError(req.ID, codeInvalidParams, "invalid tools/call params", "missing tool name")
		return
	}
	if params.Arguments == nil {
		params.Arguments = map[string]any{}
	}

	result, err := s.registry.Execute(ctx, params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, tools.ErrToolNotFound) {
			s.writeError(req.ID, codeInvalidParams, "unknown tool", params.Name)
			return
		}
		// Domain and argument failures surface as tool results so the
		// client model can read and react to them.
		s.logger.Debug("tool call failed",
			zap.String("tool", params.Name),
			zap.Error(err))
		s.reply(req, callResult{
			Content: []contentBlock{{Type: "text", Text: err.Error()}},
			IsError: true,
		})
		return
	}

	s.reply(req, callResult{
		Content: []contentBlock{{Type: "text", Text: result.Result}},
	})
}

// reply writes a success response, unless the request was a notification.
func (s *Server) reply(req *rpcRequest, result any) {
	if req.isNotification() {
		return
	}
	s.write(rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: result})
}

func (s *Server) writeError(id json.RawMessage, code int, message string, data any) {
	if len(id) == 0 {
		id = json.RawMessage("null")
	}
	s.write(rpcResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &rpcError{Code: code, Message: message, Data: data},
	})
}

func (s *Server) write(resp rpcResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("failed to marshal response", zap.Error(err))
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := s.out.Write(append(data, '\n')); err != nil {
		s.logger.Error("failed to write response", zap.Error(err))
	}
}
