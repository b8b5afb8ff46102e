package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"

	"github.com/golang/glog"

	"github.com/ironsheep/paint-bucket-mcp/internal/fill"
	"github.com/ironsheep/paint-bucket-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_flood_fill").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errMissingPath is returned by tools whose path argument is required.
var errMissingPath = errors.New("path is required")

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
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

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_flood_fill":
		return s.handleImageFloodFill(args)
	case "image_reset":
		return s.handleImageReset(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errMissingPath
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errMissingPath
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errMissingPath
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Fill Handlers ===

type imageFloodFillArgs struct {
	Path       string  `json:"path"`
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Color      string  `json:"color"`
	Tolerance  *int    `json:"tolerance"`
	OutputPath string  `json:"output_path"`
	InPlace    bool    `json:"in_place"`
	Scale      float64 `json:"scale"`
}

// FloodFillResult is the result of the image_flood_fill tool.
type FloodFillResult struct {
	Seed      fill.Point            `json:"seed"`
	Color     string                `json:"color"`
	Tolerance uint8                 `json:"tolerance"`
	Reference *imaging.ColorResult  `json:"reference"`
	Filled    int                   `json:"filled"`
	Bounds    *fill.Bounds          `json:"bounds,omitempty"`
	Saved     string                `json:"saved,omitempty"`
	InPlace   bool                  `json:"in_place"`
	Image     *imaging.EncodedImage `json:"image"`
}

func (s *Server) handleImageFloodFill(args json.RawMessage) (interface{}, error) {
	var a imageFloodFillArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errMissingPath
	}

	col, err := imaging.ParseHexColor(a.Color)
	if err != nil {
		return nil, err
	}

	tolerance := s.cfg.DefaultTolerance
	if a.Tolerance != nil {
		if *a.Tolerance < 0 || *a.Tolerance > 255 {
			return nil, fmt.Errorf("tolerance %d outside 0-255", *a.Tolerance)
		}
		tolerance = uint8(*a.Tolerance)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if pixels := int64(b.Dx()) * int64(b.Dy()); s.cfg.MaxPixels > 0 && pixels > s.cfg.MaxPixels {
		return nil, fmt.Errorf("image %dx%d exceeds the %d pixel fill limit", b.Dx(), b.Dy(), s.cfg.MaxPixels)
	}
	previewW, previewH, err := imaging.ScaledSize(b.Dx(), b.Dy(), a.Scale)
	if err != nil {
		return nil, err
	}
	if pixels := int64(previewW) * int64(previewH); s.cfg.MaxPixels > 0 && pixels > s.cfg.MaxPixels {
		return nil, fmt.Errorf("preview %dx%d at scale %g exceeds the %d pixel limit", previewW, previewH, a.Scale, s.cfg.MaxPixels)
	}

	canvas := imaging.NewCanvas(img)
	// The seed's alpha is not part of the fill; read it before painting.
	_, _, _, seedAlpha := canvas.PixelAt(a.X, a.Y)
	stats, err := canvas.FloodFill(a.X, a.Y, col, tolerance)
	if err != nil {
		return nil, err
	}
	reference := imaging.NewColorResult(color.NRGBA{
		R: stats.Reference.R, G: stats.Reference.G, B: stats.Reference.B, A: seedAlpha,
	})
	glog.V(1).Infof("flood fill %s seed=(%d,%d) color=%s tolerance=%d: %d pixels",
		a.Path, a.X, a.Y, a.Color, tolerance, stats.Filled)

	result := &FloodFillResult{
		Seed:      fill.Point{X: uint32(a.X), Y: uint32(a.Y)},
		Color:     fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B),
		Tolerance: tolerance,
		Reference: reference,
		Filled:    stats.Filled,
		InPlace:   a.InPlace,
	}
	if stats.Filled > 0 {
		bounds := stats.Bounds
		result.Bounds = &bounds
	}

	if a.OutputPath != "" {
		if err := imaging.SaveImage(a.OutputPath, canvas.Image()); err != nil {
			return nil, err
		}
		result.Saved = a.OutputPath
	}

	result.Image, err = imaging.EncodePNG(canvas.Image(), a.Scale)
	if err != nil {
		return nil, err
	}

	if a.InPlace {
		s.cache.Store(a.Path, canvas.Image())
	}

	return result, nil
}

type imageResetArgs struct {
	Path string `json:"path"`
}

// ResetResult is the result of the image_reset tool.
type ResetResult struct {
	Evicted int `json:"evicted"`
}

func (s *Server) handleImageReset(args json.RawMessage) (interface{}, error) {
	var a imageResetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		n := s.cache.Len()
		s.cache.Clear()
		return &ResetResult{Evicted: n}, nil
	}
	if s.cache.Evict(a.Path) {
		return &ResetResult{Evicted: 1}, nil
	}
	return &ResetResult{}, nil
}
