// Package server implements the MCP (Model Context Protocol) server for paint-bucket fills.
//
// This package provides a JSON-RPC 2.0 server that exposes the flood fill engine
// through the MCP protocol, so MCP-compatible clients can recolor connected
// regions of an image by pointing at a seed pixel.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get the color at a pixel
//
// Fill Operations:
//   - image_flood_fill: Fill the region connected to a seed pixel
//   - image_reset: Drop cached images, undoing in-place fills
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images keyed by path.
// A fill always paints a private copy of the cached image. With in_place set,
// the filled copy replaces the cache entry so later fills build on it; the
// file on disk is only written when output_path is given.
//
// # Logging
//
// Diagnostics go to stderr through glog; stdout carries protocol traffic only.
// Per-request tracing is logged at verbosity 1.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    glog.Exit(err)
//	}
package server
