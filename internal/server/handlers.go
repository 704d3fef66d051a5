package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/wkettler/imagedock/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_resize").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the
// specified tool. Tool failures come back as JSON-RPC errors with code
// -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Inventory
	case "image_list":
		return s.handleImageList(args)
	case "image_info":
		return s.handleImageInfo(args)

	// Transforms
	case "image_resize":
		return s.handleImageResize(args)
	case "image_resize_data":
		return s.handleImageResizeData(args)
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_save_as":
		return s.handleImageSaveAs(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Inventory Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

// imageListResult wraps the enumeration so the count survives even if
// a client flattens the entry list.
type imageListResult struct {
	Count  int                 `json:"count"`
	Images []imaging.ImageInfo `json:"images"`
}

func (s *Server) handleImageList(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	images, err := imaging.ListImages(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	return &imageListResult{Count: len(images), Images: images}, nil
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetImageInfo(s.cache, a.Path)
}

// === Transform Handlers ===

// transformResult reports an in-place transform back to the client.
type transformResult struct {
	Success bool `json:"success"`
	Width   int  `json:"width"`
	Height  int  `json:"height"`
}

type imageResizeArgs struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := imaging.ResizeFile(s.cache, a.Path, a.Width, a.Height); err != nil {
		return nil, err
	}
	return &transformResult{Success: true, Width: a.Width, Height: a.Height}, nil
}

type imageResizeDataArgs struct {
	Data   string `json:"data"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type imageResizeDataResult struct {
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

func (s *Server) handleImageResizeData(args json.RawMessage) (interface{}, error) {
	var a imageResizeDataArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(a.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 data: %w", err)
	}
	out, err := imaging.ResizeBytes(data, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return &imageResizeDataResult{
		ImageBase64: base64.StdEncoding.EncodeToString(out),
		MimeType:    "image/png",
		Width:       a.Width,
		Height:      a.Height,
	}, nil
}

type imageCropArgs struct {
	Path   string  `json:"path"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	region := imaging.FractionalRect{X: a.X, Y: a.Y, W: a.Width, H: a.Height}
	rect, err := imaging.CropFile(s.cache, a.Path, region)
	if err != nil {
		return nil, err
	}
	return &transformResult{Success: true, Width: rect.W, Height: rect.H}, nil
}

type imageSaveAsArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
}

type imageSaveAsResult struct {
	Success bool   `json:"success"`
	Format  string `json:"format"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

func (s *Server) handleImageSaveAs(args json.RawMessage) (interface{}, error) {
	var a imageSaveAsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	w, h, err := imaging.SaveAs(s.cache, a.Path, a.Output)
	if err != nil {
		return nil, err
	}
	return &imageSaveAsResult{
		Success: true,
		Format:  imaging.FormatForPath(a.Output),
		Width:   w,
		Height:  h,
	}, nil
}
