package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/dmarsters/author-style-mcp/internal/styleops"
	"github.com/dmarsters/author-style-mcp/internal/stylespace"
)

// ServerMeta identifies the server in get_server_info output.
type ServerMeta struct {
	Name        string
	Version     string
	Description string
}

// NewStyleRegistry builds a registry populated with the full author-style
// tool surface.
func NewStyleRegistry(logger *zap.Logger, meta ServerMeta) *Registry {
	reg := NewRegistry(logger)

	reg.MustRegister(&Tool{
		Name:        "get_author_styles",
		Description: "List all available author styles with display names, language origins, and style-space coordinates.",
		Category:    CategoryCatalog,
		ReadOnly:    true,
		Schema:      ToolSchema{Properties: map[string]Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			listing := make(map[string]any, len(stylespace.AuthorIDs()))
			for _, entry := range stylespace.Catalog() {
				listing[entry.ID] = map[string]any{
					"display_name":    entry.DisplayName,
					"language_origin": entry.LanguageOrigin,
					"coordinates":     entry.Coordinates,
				}
			}
			return marshalResult(listing)
		},
	})

	reg.MustRegister(&Tool{
		Name:        "get_author_style_profile",
		Description: "Get the complete profile for one author style: coordinates, signature moves, and text/image vocabularies.",
		Category:    CategoryCatalog,
		ReadOnly:    true,
		Schema: ToolSchema{
			Required: []string{"author_id"},
			Properties: map[string]Property{
				"author_id": {Type: "string", Description: "Catalog author ID, e.g. \"hemingway\""},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			id, err := stringArg(args, "author_id")
			if err != nil {
				return "", err
			}
			entry, err := stylespace.Lookup(id)
			if err != nil {
				return "", err
			}
			return marshalResult(entry)
		},
	})

	reg.MustRegister(&Tool{
		Name:        "get_style_dimensions",
		Description: "Get the full 8-dimension taxonomy with tier-to-vocabulary mappings for text and image output.",
		Category:    CategoryCatalog,
		ReadOnly:    true,
		Schema:      ToolSchema{Properties: map[string]Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			specs := stylespace.Dimensions()
			table := make(map[string]stylespace.DimensionSpec, len(specs))
			for _, spec := range specs {
				table[string(spec.ID)] = spec
			}
			return marshalResult(table)
		},
	})

	reg.MustRegister(&Tool{
		Name:        "get_parameter_names",
		Description: "Get the canonically ordered list of style-space dimension names.",
		Category:    CategoryCatalog,
		ReadOnly:    true,
		Schema:      ToolSchema{Properties: map[string]Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			data, err := json.Marshal(stylespace.ParameterNames())
			if err != nil {
				return "", err
			}
			return string(data), nil
		},
	})

	reg.MustRegister(&Tool{
		Name:        "compute_author_distance",
		Description: "Compute Euclidean distance between two author styles with per-dimension breakdown and max-contrast axis.",
		Category:    CategoryAnalysis,
		ReadOnly:    true,
		Schema: ToolSchema{
			Required: []string{"author_id_1", "author_id_2"},
			Properties: map[string]Property{
				"author_id_1": {Type: "string", Description: "First author ID"},
				"author_id_2": {Type: "string", Description: "Second author ID"},
				"weighted":    {Type: "boolean", Description: "Apply perceptual salience weights", Default: false},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			id1, err := stringArg(args, "author_id_1")
			if err != nil {
				return "", err
			}
			id2, err := stringArg(args, "author_id_2")
			if err != nil {
				return "", err
			}
			weighted, err := boolArg(args, "weighted")
			if err != nil {
				return "", err
			}
			report, err := styleops.ComputeDistance(id1, id2, weighted)
			if err != nil {
				return "", err
			}
			return marshalResult(report)
		},
	})

	reg.MustRegister(&Tool{
		Name:        "blend_author_styles",
		Description: "Blend multiple author styles by weighted interpolation; weights are normalized to sum to 1.0.",
		Category:    CategoryAnalysis,
		ReadOnly:    true,
		Schema: ToolSchema{
			Required: []string{"blend_spec"},
			Properties: map[string]Property{
				"blend_spec": {Type: "object", Description: "Mapping of author_id to weight, e.g. {\"hemingway\": 0.7, \"borges\": 0.3}. A JSON-encoded string is also accepted."},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			spec, err := numberMapArg(args, "blend_spec")
			if err != nil {
				return "", err
			}
			result, err := styleops.Interpolate(spec)
			if err != nil {
				return "", err
			}
			return marshalResult(result)
		},
	})

	reg.MustRegister(&Tool{
		Name:        "generate_text_style_prompt",
		Description: "Generate text-generation-ready style directives. Provide exactly one of author_id, blend_spec, or custom_coordinates.",
		Category:    CategoryGeneration,
		ReadOnly:    true,
		Schema: ToolSchema{
			Properties: map[string]Property{
				"author_id":          {Type: "string", Description: "Single author ID for pure style"},
				"blend_spec":         {Type: "object", Description: "Mapping of author_id to weight"},
				"custom_coordinates": {Type: "object", Description: "Raw 8D coordinates keyed by dimension name"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			req, err := promptRequestFromArgs(args)
			if err != nil {
				return "", err
			}
			result, err := styleops.GenerateTextPrompt(req)
			if err != nil {
				return "", err
			}
			return marshalResult(result)
		},
	})

	reg.MustRegister(&Tool{
		Name:        "generate_image_style_prompt",
		Description: "Generate image-generation-ready visual directives from author style. Provide exactly one of author_id, blend_spec, or custom_coordinates.",
		Category:    CategoryGeneration,
		ReadOnly:    true,
		Schema: ToolSchema{
			Properties: map[string]Property{
				"author_id":          {Type: "string", Description: "Single author ID for pure style"},
				"blend_spec":         {Type: "object", Description: "Mapping of author_id to weight"},
				"custom_coordinates": {Type: "object", Description: "Raw 8D coordinates keyed by dimension name"},
				"style_modifier":     {Type: "string", Description: "Optional prefix, e.g. \"photorealistic\" or \"oil painting\""},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			req, err := promptRequestFromArgs(args)
			if err != nil {
				return "", err
			}
			modifier, err := optionalStringArg(args, "style_modifier")
			if err != nil {
				return "", err
			}
			result, err := styleops.GenerateImagePrompt(req, modifier)
			if err != nil {
				return "", err
			}
			return marshalResult(result)
		},
	})

	reg.MustRegister(&Tool{
		Name:        "find_style_extremes",
		Description: "Find the maximum-contrast author pair in style-space with full per-dimension breakdown.",
		Category:    CategoryAnalysis,
		ReadOnly:    true,
		Schema:      ToolSchema{Properties: map[string]Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			report, err := styleops.FindMaxContrastPair()
			if err != nil {
				return "", err
			}
			return marshalResult(report)
		},
	})

	reg.MustRegister(&Tool{
		Name:        "find_nearest_style",
		Description: "Find the closest catalog author to a given author, excluding itself.",
		Category:    CategoryAnalysis,
		ReadOnly:    true,
		Schema: ToolSchema{
			Required: []string{"author_id"},
			Properties: map[string]Property{
				"author_id": {Type: "string", Description: "Author to find neighbors for"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			id, err := stringArg(args, "author_id")
			if err != nil {
				return "", err
			}
			report, err := styleops.FindNearestNeighbor(id)
			if err != nil {
				return "", err
			}
			return marshalResult(report)
		},
	})

	reg.MustRegister(&Tool{
		Name:        "get_server_info",
		Description: "Get server metadata: available authors, dimensions, and capabilities.",
		Category:    CategoryMeta,
		ReadOnly:    true,
		Schema:      ToolSchema{Properties: map[string]Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			authors := make(map[string]any, len(stylespace.AuthorIDs()))
			for _, entry := range stylespace.Catalog() {
				authors[entry.ID] = map[string]string{
					"display_name":    entry.DisplayName,
					"language_origin": entry.LanguageOrigin,
				}
			}
			info := map[string]any{
				"name":            meta.Name,
				"version":         meta.Version,
				"description":     meta.Description,
				"dimensions":      stylespace.NumDimensions,
				"parameter_names": stylespace.ParameterNames(),
				"authors":         authors,
				"n_authors":       len(authors),
				"capabilities": []string{
					"Single author style extraction (text + image)",
					"Multi-author weighted blending",
					"Style distance computation",
					"Nearest neighbor / max contrast discovery",
				},
			}
			return marshalResult(info)
		},
	})

	return reg
}

// promptRequestFromArgs assembles a prompt request from tool arguments.
// Source exclusivity is enforced downstream.
func promptRequestFromArgs(args map[string]any) (styleops.PromptRequest, error) {
	var req styleops.PromptRequest

	id, err := optionalStringArg(args, "author_id")
	if err != nil {
		return req, err
	}
	req.AuthorID = id

	if _, ok := args["blend_spec"]; ok {
		spec, err := numberMapArg(args, "blend_spec")
		if err != nil {
			return req, err
		}
		req.Blend = spec
	}

	if _, ok := args["custom_coordinates"]; ok {
		coords, err := numberMapArg(args, "custom_coordinates")
		if err != nil {
			return req, err
		}
		point := make(stylespace.StylePoint, len(coords))
		for name, value := range coords {
			point[stylespace.Dimension(name)] = value
		}
		req.Coordinates = point
	}

	return req, nil
}

func marshalResult(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return string(data), nil
}

func stringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingRequiredArg, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArgType, key)
	}
	return s, nil
}

func optionalStringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArgType, key)
	}
	return s, nil
}

func boolArg(args map[string]any, key string) (bool, error) {
	raw, ok := args[key]
	if !ok {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a boolean", ErrInvalidArgType, key)
	}
	return b, nil
}

// numberMapArg decodes a string-to-number object argument. Clients sometimes
// double-encode these, so a JSON string holding the object is also accepted.
func numberMapArg(args map[string]any, key string) (map[string]float64, error) {
	raw, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequiredArg, key)
	}

	var obj map[string]any
	switch v := raw.(type) {
	case map[string]any:
		obj = v
	case string:
		if err := json.Unmarshal([]byte(v), &obj); err != nil {
			return nil, fmt.Errorf("%w: %s is not valid JSON: %v", ErrInvalidArgType, key, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s must be an object or JSON string", ErrInvalidArgType, key)
	}

	out := make(map[string]float64, len(obj))
	for name, value := range obj {
		num, ok := value.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%q] must be a number", ErrInvalidArgType, key, name)
		}
		out[name] = num
	}
	return out, nil
}
