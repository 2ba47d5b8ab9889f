package tools

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func newTestTool(name string) *Tool {
	return &Tool{
		Name:        name,
		Description: "A test tool",
		Category:    CategoryMeta,
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			return "ok", nil
		},
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry(zap.NewNop())
	if reg == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if reg.Count() != 0 {
		t.Errorf("new registry should be empty, got %d tools", reg.Count())
	}
}

func TestRegisterAndGet(t *testing.T) {
	reg := NewRegistry(nil)

	if err := reg.Register(newTestTool("test_tool")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got := reg.Get("test_tool")
	if got == nil {
		t.Fatal("Get returned nil for registered tool")
	}
	if got.Name != "test_tool" {
		t.Errorf("got name %q, want %q", got.Name, "test_tool")
	}
	if !reg.Has("test_tool") {
		t.Error("Has returned false for registered tool")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	reg := NewRegistry(nil)

	if err := reg.Register(newTestTool("dupe")); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	err := reg.Register(newTestTool("dupe"))
	if !errors.Is(err, ErrToolAlreadyRegistered) {
		t.Errorf("want ErrToolAlreadyRegistered, got %v", err)
	}
}

func TestRegisterInvalid(t *testing.T) {
	reg := NewRegistry(nil)

	if err := reg.Register(&Tool{Name: ""}); !errors.Is(err, ErrToolNameEmpty) {
		t.Errorf("want ErrToolNameEmpty, got %v", err)
	}
	if err := reg.Register(&Tool{Name: "no_exec"}); !errors.Is(err, ErrToolExecuteNil) {
		t.Errorf("want ErrToolExecuteNil, got %v", err)
	}
}

func TestExecuteUnknown(t *testing.T) {
	reg := NewRegistry(nil)

	_, err := reg.Execute(context.Background(), "missing", nil)
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("want ErrToolNotFound, got %v", err)
	}
}

func TestExecuteMissingRequiredArg(t *testing.T) {
	reg := NewRegistry(nil)

	tool := newTestTool("needs_arg")
	tool.Schema = ToolSchema{Required: []string{"author_id"}}
	if err := reg.Register(tool); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, err := reg.Execute(context.Background(), "needs_arg", map[string]any{})
	if !errors.Is(err, ErrMissingRequiredArg) {
		t.Errorf("want ErrMissingRequiredArg, got %v", err)
	}
	if result == nil || result.IsSuccess() {
		t.Error("result should record the failure")
	}
}

func TestExecuteSuccess(t *testing.T) {
	reg := NewRegistry(nil)
	if err := reg.Register(newTestTool("echo")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, err := reg.Execute(context.Background(), "echo", map[string]any{})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Result != "ok" {
		t.Errorf("got result %q, want %q", result.Result, "ok")
	}
	if !result.IsSuccess() {
		t.Error("IsSuccess should be true")
	}
}

func TestRemove(t *testing.T) {
	reg := NewRegistry(nil)
	if err := reg.Register(newTestTool("victim")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	reg.Remove("victim")
	if reg.Has("victim") {
		t.Error("tool still present after Remove")
	}
	if got := len(reg.GetByCategory(CategoryMeta)); got != 0 {
		t.Errorf("category index still holds %d tools", got)
	}

	// Removing an unknown name is a no-op.
	reg.Remove("never_registered")
}

func TestAllSortedByName(t *testing.T) {
	reg := NewRegistry(nil)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := reg.Register(newTestTool(name)); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	all := reg.All()
	if len(all) != 3 {
		t.Fatalf("got %d tools, want 3", len(all))
	}
	if all[0].Name != "alpha" || all[1].Name != "mid" || all[2].Name != "zeta" {
		t.Errorf("All not sorted by name: %v", []string{all[0].Name, all[1].Name, all[2].Name})
	}
}
