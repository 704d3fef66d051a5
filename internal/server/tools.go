package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Inventory
		{
			Name:        "image_list",
			Description: "List the supported images (jpg, jpeg, png, gif, bmp) directly inside a directory with their dimensions and sizes. Corrupt or unreadable files are skipped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the directory",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_info",
			Description: "Get metadata for one image file: dimensions, size on disk, and average color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Transforms
		{
			Name:        "image_resize",
			Description: "Resize an image file to exact pixel dimensions, overwriting it in place in its original format. Uses a triangle (bilinear) resampling kernel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels (> 0)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels (> 0)",
					},
				},
				"required": []string{"path", "width", "height"},
			},
		},
		{
			Name:        "image_resize_data",
			Description: "Resize a base64-encoded image buffer (format guessed from its bytes) and return the result as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"data": map[string]interface{}{
						"type":        "string",
						"description": "Base64-encoded image bytes",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels (> 0)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels (> 0)",
					},
				},
				"required": []string{"data", "width", "height"},
			},
		},
		{
			Name:        "image_crop",
			Description: "Crop an image file to a fractional region and overwrite it in place. Coordinates are fractions of the image dimensions in [0.0, 1.0]; a region overflowing the edge keeps its origin and loses width or height.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "number",
						"description": "Left edge as a fraction of image width (0.0-1.0)",
					},
					"y": map[string]interface{}{
						"type":        "number",
						"description": "Top edge as a fraction of image height (0.0-1.0)",
					},
					"width": map[string]interface{}{
						"type":        "number",
						"description": "Region width as a fraction of image width (0.0-1.0)",
					},
					"height": map[string]interface{}{
						"type":        "number",
						"description": "Region height as a fraction of image height (0.0-1.0)",
					},
				},
				"required": []string{"path", "x", "y", "width", "height"},
			},
		},
		{
			Name:        "image_save_as",
			Description: "Re-encode an image into the format implied by the output path's extension (png, jpg, gif, bmp, ico). ICO output larger than 256 pixels per side is scaled down preserving aspect ratio.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path for the converted image; the extension selects the format",
					},
				},
				"required": []string{"path", "output"},
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
