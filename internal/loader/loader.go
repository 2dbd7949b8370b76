package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/kolah/swagclient/internal/diag"
	"github.com/pb33f/libopenapi"
	v2 "github.com/pb33f/libopenapi/datamodel/high/v2"
	"go.yaml.in/yaml/v4"
)

const SupportedVersion = "2.0"

type Result struct {
	Document *libopenapi.DocumentModel[v2.Swagger]
	Version  string
	Source   string
	Warnings []string
	RawData  []byte
}

// Settings controls remote retrieval.
type Settings struct {
	Timeout time.Duration
	Retries int
	Logger  *slog.Logger
}

// Load reads a document from a file path or an http(s) URL.
func Load(ctx context.Context, input string, settings Settings) (*Result, error) {
	if strings.Contains(input, "://") {
		u, err := url.Parse(input)
		if err != nil {
			return nil, diag.WrapError(diag.CodeInput, input, "invalid document URL", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, diag.WrapError(diag.CodeInput, input, fmt.Sprintf("unsupported URL scheme %q", u.Scheme), nil)
		}
		return LoadURL(ctx, input, settings)
	}
	return LoadFile(input)
}

func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.WrapError(diag.CodeInput, path, "reading spec file", err)
	}
	return LoadBytes(data, path)
}

func LoadURL(ctx context.Context, rawURL string, settings Settings) (*Result, error) {
	client := newHTTPClient(settings)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, diag.WrapError(diag.CodeInput, rawURL, "building request", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return nil, diag.WrapError(diag.CodeNetwork, rawURL, "fetching spec", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, diag.WrapError(diag.CodeNetwork, rawURL, fmt.Sprintf("fetching spec: unexpected status %s", resp.Status), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, diag.WrapError(diag.CodeNetwork, rawURL, "reading response body", err)
	}
	return LoadBytes(data, rawURL)
}

// LoadBytes parses an in-memory document. source is only used in messages.
func LoadBytes(data []byte, source string) (*Result, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, diag.WrapError(diag.CodeParse, source, "parsing spec document", err)
	}
	if err := checkReferences(&root); err != nil {
		return nil, err
	}

	doc, err := libopenapi.NewDocument(data)
	if err != nil {
		return nil, diag.WrapError(diag.CodeParse, source, "parsing spec document", err)
	}

	version := doc.GetVersion()
	if version != SupportedVersion {
		return nil, diag.WrapError(diag.CodeUnsupportedVersion, source,
			fmt.Sprintf("unsupported document version %q (only swagger %s is supported)", version, SupportedVersion), nil)
	}

	result := &Result{
		Version: version,
		Source:  source,
		RawData: data,
	}

	model, err := doc.BuildV2Model()
	if model == nil {
		return nil, diag.WrapError(diag.CodeParse, source, "building swagger model", err)
	}
	if err != nil {
		// Circular references still produce a usable model.
		result.Warnings = append(result.Warnings, fmt.Sprintf("building swagger model: %v", err))
	}
	result.Document = model

	return result, nil
}
