package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/dmarsters/author-style-mcp/internal/tools"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T, in io.Reader, out io.Writer) *Server {
	t.Helper()

	registry := tools.NewStyleRegistry(zap.NewNop(), tools.ServerMeta{
		Name:        "author-style-mcp",
		Version:     "0.1.0",
		Description: "test",
	})

	srv, err := New(Options{
		Name:     "author-style-mcp",
		Version:  "0.1.0",
		Registry: registry,
		Logger:   zap.NewNop(),
		In:       in,
		Out:      out,
	})
	require.NoError(t, err)
	return srv
}

// runSession feeds newline-delimited requests through a server and returns
// the decoded response lines in order.
func runSession(t *testing.T, input string) []map[string]any {
	t.Helper()

	var out bytes.Buffer
	srv := newTestServer(t, strings.NewReader(input), &out)
	require.NoError(t, srv.Run(context.Background()))

	var responses []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var resp map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &resp), "line %q", line)
		responses = append(responses, resp)
	}
	return responses
}

func TestHandshakeAndList(t *testing.T) {
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
	}, "\n") + "\n"

	responses := runSession(t, input)
	require.Len(t, responses, 2, "notification must not produce a response")

	init := responses[0]
	assert.Equal(t, float64(1), init["id"])
	result := init["result"].(map[string]any)
	assert.Equal(t, "2024-11-05", result["protocolVersion"])
	serverInfo := result["serverInfo"].(map[string]any)
	assert.Equal(t, "author-style-mcp", serverInfo["name"])

	list := responses[1]
	listResult := list["result"].(map[string]any)
	toolList := listResult["tools"].([]any)
	assert.Len(t, toolList, 11)

	first := toolList[0].(map[string]any)
	assert.Equal(t, "blend_author_styles", first["name"])
	assert.Contains(t, first, "inputSchema")
	annotations := first["annotations"].(map[string]any)
	assert.Equal(t, true, annotations["readOnlyHint"])
}

func TestToolsCall(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"get_parameter_names"}}` + "\n"

	responses := runSession(t, input)
	require.Len(t, responses, 1)

	result := responses[0]["result"].(map[string]any)
	assert.Nil(t, result["isError"])

	content := result["content"].([]any)
	require.Len(t, content, 1)
	block := content[0].(map[string]any)
	assert.Equal(t, "text", block["type"])
	assert.Contains(t, block["text"], "syntactic_density")
}

func TestToolsCallDomainErrorIsToolResult(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"get_author_style_profile","arguments":{"author_id":"austen"}}}` + "\n"

	responses := runSession(t, input)
	require.Len(t, responses, 1)

	resp := responses[0]
	assert.Nil(t, resp["error"], "domain failures are not protocol errors")

	result := resp["result"].(map[string]any)
	assert.Equal(t, true, result["isError"])
	content := result["content"].([]any)
	block := content[0].(map[string]any)
	assert.Contains(t, block["text"], "unknown author")
	assert.Contains(t, block["text"], "hemingway")
}

func TestToolsCallUnknownTool(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"no_such_tool"}}` + "\n"

	responses := runSession(t, input)
	require.Len(t, responses, 1)

	rpcErr := responses[0]["error"].(map[string]any)
	assert.Equal(t, float64(codeInvalidParams), rpcErr["code"])
}

func TestParseError(t *testing.T) {
	responses := runSession(t, "{not json}\n")
	require.Len(t, responses, 1)

	resp := responses[0]
	assert.Nil(t, resp["id"])
	rpcErr := resp["error"].(map[string]any)
	assert.Equal(t, float64(codeParseError), rpcErr["code"])
}

func TestMethodNotFound(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":5,"method":"resources/list"}` + "\n"

	responses := runSession(t, input)
	require.Len(t, responses, 1)

	rpcErr := responses[0]["error"].(map[string]any)
	assert.Equal(t, float64(codeMethodNotFound), rpcErr["code"])
}

func TestUnknownNotificationIgnored(t *testing.T) {
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","method":"notifications/cancelled"}`,
		`{"jsonrpc":"2.0","id":6,"method":"ping"}`,
	}, "\n") + "\n"

	responses := runSession(t, input)
	require.Len(t, responses, 1)
	assert.Equal(t, float64(6), responses[0]["id"])
	assert.NotNil(t, responses[0]["result"])
}

func TestStringRequestIDEchoed(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":"req-abc","method":"ping"}` + "\n"

	responses := runSession(t, input)
	require.Len(t, responses, 1)
	assert.Equal(t, "req-abc", responses[0]["id"])
}

func TestRunStopsOnContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	var out bytes.Buffer
	srv := newTestServer(t, pr, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	cancel()
	// Unblock the reader goroutine.
	require.NoError(t, pw.Close())

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)

	_, err = New(Options{Registry: tools.NewRegistry(nil)})
	assert.Error(t, err, "missing streams")
}
