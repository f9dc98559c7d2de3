// resources.go implements MCP resource handlers for ruling access.
//
// MCP resources provide read-only access via URI schemes, enabling LLM
// clients to load a ruling's text as context without calling a tool.
//
// Design: Resource URIs follow the pattern juris://rulings/{file}. The file
// name is path-unescaped so names containing spaces or slashes can be
// addressed.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jpl-au/juris/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

var (
	// ErrInvalidURI indicates a malformed resource URI, helping clients
	// debug URI construction issues.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyFile indicates a missing file name in a resource URI.
	ErrEmptyFile = errors.New("empty ruling file name")
)

// readRuling handles juris://rulings/{file} resource requests.
func (h *handlers) readRuling(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	file, err := parseRulingURI(uri)
	if err != nil {
		return nil, err
	}

	r, err := h.svc.Ruling(ctx, file)

	log.Event("mcp:resource", "read").Path(file).Write(err)

	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     r.FullText,
		},
	}, nil
}

// parseRulingURI extracts the file name from a ruling URI.
func parseRulingURI(uri string) (string, error) {
	const prefix = "juris://rulings/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	rest := strings.TrimPrefix(uri, prefix)
	if rest == "" {
		return "", ErrEmptyFile
	}

	file, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}
	return file, nil
}
