package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for subsequent fills.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel. This is the reference color a fill seeded at that pixel would replace.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Fill Operations
		{
			Name: "image_flood_fill",
			Description: "Paint-bucket fill: replace every pixel 4-connected to (x,y) whose color is within tolerance of the seed color with an opaque fill color. " +
				"Returns the number of pixels filled, their bounding box, and the result as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Seed X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Seed Y coordinate (0-based, from top)",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Fill color as #RRGGBB or #RGB",
					},
					"tolerance": map[string]interface{}{
						"type":        "integer",
						"minimum":     0,
						"maximum":     255,
						"description": "Exclusive per-channel color difference bound (0-255). A pixel matches when every channel differs from the seed color by less than this. Defaults to the server's configured tolerance.",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to save the filled image (.png, .jpg or .bmp)",
					},
					"in_place": map[string]interface{}{
						"type":        "boolean",
						"description": "Keep the filled image as the cached version of path so later calls build on it. The file on disk is not modified. Default false",
						"default":     false,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned preview. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "x", "y", "color"},
			},
		},
		{
			Name:        "image_reset",
			Description: "Discard cached images so the next call reloads from disk, undoing in-place fills. Omit path to clear every cached image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
