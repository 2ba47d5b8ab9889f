package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testMeta() ServerMeta {
	return ServerMeta{
		Name:        "author-style-mcp",
		Version:     "0.1.0",
		Description: "test catalog",
	}
}

func TestNewStyleRegistry(t *testing.T) {
	reg := NewStyleRegistry(zap.NewNop(), testMeta())
	assert.Equal(t, 11, reg.Count())

	want := []string{
		"blend_author_styles",
		"compute_author_distance",
		"find_nearest_style",
		"find_style_extremes",
		"generate_image_style_prompt",
		"generate_text_style_prompt",
		"get_author_style_profile",
		"get_author_styles",
		"get_parameter_names",
		"get_server_info",
		"get_style_dimensions",
	}
	assert.Equal(t, want, reg.Names())
}

func TestGetParameterNamesTool(t *testing.T) {
	reg := NewStyleRegistry(zap.NewNop(), testMeta())

	result, err := reg.Execute(context.Background(), "get_parameter_names", map[string]any{})
	require.NoError(t, err)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(result.Result), &names))
	assert.Equal(t, []string{
		"syntactic_density",
		"sensory_concreteness",
		"ornamental_register",
		"tension_visibility",
		"tension_temporality",
		"reality_stability",
		"interiority",
		"temporal_mode",
	}, names)
}

func TestComputeAuthorDistanceTool(t *testing.T) {
	reg := NewStyleRegistry(zap.NewNop(), testMeta())

	t.Run("unweighted", func(t *testing.T) {
		result, err := reg.Execute(context.Background(), "compute_author_distance", map[string]any{
			"author_id_1": "hemingway",
			"author_id_2": "de_sade",
		})
		require.NoError(t, err)

		var report map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Result), &report))
		assert.Equal(t, 1.7923, report["euclidean_distance"])
		assert.Equal(t, "syntactic_density", report["max_contrast_axis"])
	})

	t.Run("missing required arg", func(t *testing.T) {
		_, err := reg.Execute(context.Background(), "compute_author_distance", map[string]any{
			"author_id_1": "hemingway",
		})
		assert.ErrorIs(t, err, ErrMissingRequiredArg)
	})

	t.Run("wrong arg type", func(t *testing.T) {
		_, err := reg.Execute(context.Background(), "compute_author_distance", map[string]any{
			"author_id_1": 42,
			"author_id_2": "de_sade",
		})
		assert.ErrorIs(t, err, ErrInvalidArgType)
	})

	t.Run("unknown author", func(t *testing.T) {
		_, err := reg.Execute(context.Background(), "compute_author_distance", map[string]any{
			"author_id_1": "hemingway",
			"author_id_2": "austen",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown author")
	})
}

func TestBlendAuthorStylesTool(t *testing.T) {
	reg := NewStyleRegistry(zap.NewNop(), testMeta())

	check := func(t *testing.T, payload string) {
		var result map[string]any
		require.NoError(t, json.Unmarshal([]byte(payload), &result))
		assert.Equal(t, "70% Hemingway-esque / 30% Borges-esque", result["blend_display"])

		nearest := result["nearest_catalog_author"].(map[string]any)
		assert.Equal(t, "didion", nearest["id"])
	}

	t.Run("object spec", func(t *testing.T) {
		result, err := reg.Execute(context.Background(), "blend_author_styles", map[string]any{
			"blend_spec": map[string]any{"hemingway": 0.7, "borges": 0.3},
		})
		require.NoError(t, err)
		check(t, result.Result)
	})

	t.Run("double-encoded spec", func(t *testing.T) {
		result, err := reg.Execute(context.Background(), "blend_author_styles", map[string]any{
			"blend_spec": `{"hemingway": 0.7, "borges": 0.3}`,
		})
		require.NoError(t, err)
		check(t, result.Result)
	})

	t.Run("invalid spec type", func(t *testing.T) {
		_, err := reg.Execute(context.Background(), "blend_author_styles", map[string]any{
			"blend_spec": []any{"hemingway"},
		})
		assert.ErrorIs(t, err, ErrInvalidArgType)
	})
}

func TestGenerateTextStylePromptTool(t *testing.T) {
	reg := NewStyleRegistry(zap.NewNop(), testMeta())

	t.Run("single author", func(t *testing.T) {
		result, err := reg.Execute(context.Background(), "generate_text_style_prompt", map[string]any{
			"author_id": "kafka",
		})
		require.NoError(t, err)

		var prompt map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Result), &prompt))
		assert.Equal(t, "Kafka-esque", prompt["source"])
		assert.NotEmpty(t, prompt["full_prompt"])
	})

	t.Run("two sources rejected", func(t *testing.T) {
		_, err := reg.Execute(context.Background(), "generate_text_style_prompt", map[string]any{
			"author_id":  "kafka",
			"blend_spec": map[string]any{"borges": 1.0},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one")
	})

	t.Run("custom coordinates", func(t *testing.T) {
		result, err := reg.Execute(context.Background(), "generate_text_style_prompt", map[string]any{
			"custom_coordinates": map[string]any{
				"syntactic_density": 0.9,
				"interiority":       0.1,
			},
		})
		require.NoError(t, err)

		var prompt map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Result), &prompt))
		assert.Equal(t, "Custom coordinates", prompt["source"])
	})
}

func TestGenerateImageStylePromptTool(t *testing.T) {
	reg := NewStyleRegistry(zap.NewNop(), testMeta())

	result, err := reg.Execute(context.Background(), "generate_image_style_prompt", map[string]any{
		"author_id":      "hemingway",
		"style_modifier": "photorealistic",
	})
	require.NoError(t, err)

	var prompt map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Result), &prompt))
	text := prompt["prompt"].(string)
	assert.Contains(t, text, "photorealistic")
	assert.Contains(t, text, "stark composition")
}

func TestGetServerInfoTool(t *testing.T) {
	reg := NewStyleRegistry(zap.NewNop(), testMeta())

	result, err := reg.Execute(context.Background(), "get_server_info", map[string]any{})
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Result), &info))
	assert.Equal(t, "author-style-mcp", info["name"])
	assert.Equal(t, float64(11), info["n_authors"])
	assert.Equal(t, float64(8), info["dimensions"])
	assert.Len(t, info["authors"], 11)
}

func TestGetAuthorStyleProfileTool(t *testing.T) {
	reg := NewStyleRegistry(zap.NewNop(), testMeta())

	result, err := reg.Execute(context.Background(), "get_author_style_profile", map[string]any{
		"author_id": "shonagon",
	})
	require.NoError(t, err)

	var profile map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Result), &profile))
	assert.Equal(t, "Sei Shōnagon-esque", profile["display_name"])
	coords := profile["coordinates"].(map[string]any)
	assert.Equal(t, 0.95, coords["sensory_concreteness"])
}

func TestFindStyleExtremesTool(t *testing.T) {
	reg := NewStyleRegistry(zap.NewNop(), testMeta())

	result, err := reg.Execute(context.Background(), "find_style_extremes", map[string]any{})
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Result), &report))
	assert.Equal(t, "Hemingway-esque", report["author_1"])
	assert.Equal(t, "Lovecraft-esque", report["author_2"])
}

func TestSchemaJSONSchema(t *testing.T) {
	schema := ToolSchema{
		Required: []string{"author_id"},
		Properties: map[string]Property{
			"author_id": {Type: "string", Description: "Catalog author ID"},
		},
	}

	doc := schema.JSONSchema()
	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, []string{"author_id"}, doc["required"])

	props := doc["properties"].(map[string]any)
	assert.Contains(t, props, "author_id")
}
