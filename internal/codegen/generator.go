package codegen

import (
	"fmt"

	"github.com/kolah/swagclient/internal/config"
	"github.com/kolah/swagclient/internal/naming"
	"github.com/kolah/swagclient/internal/targets/models"
	"github.com/kolah/swagclient/internal/targets/services"
	"github.com/kolah/swagclient/internal/templates"
	embeddedtmpl "github.com/kolah/swagclient/templates"
)

type Generator struct {
	config *config.Config
	engine templates.Engine
}

type Output struct {
	Filename string
	Content  string
}

func New(cfg *config.Config) (*Generator, error) {
	engine, err := templates.NewEngine(embeddedtmpl.TypeScript(), cfg.Templates.Dir, naming.TemplateFuncs())
	if err != nil {
		return nil, fmt.Errorf("creating template engine: %w", err)
	}

	return &Generator{
		config: cfg,
		engine: engine,
	}, nil
}

type runtimeData struct {
	BaseURL string
}

type indexData struct {
	Models   []string
	Services []string
}

// Generate renders one file per model and service plus the runtime and
// index files.
func (g *Generator) Generate(result *Result) ([]Output, error) {
	var outputs []Output
	ext := g.config.OutputExtension
	index := indexData{}

	modelTarget := models.New()
	for _, m := range result.Models.Models() {
		content, err := modelTarget.Generate(g.engine, m, result.Models)
		if err != nil {
			return nil, fmt.Errorf("generating model %s: %w", m.Name, err)
		}
		out, err := g.output(models.Filename(m, ext), content)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
		index.Models = append(index.Models, m.Name)
	}

	serviceTarget := services.New()
	for _, svc := range result.Services.Services() {
		content, err := serviceTarget.Generate(g.engine, svc, result.Models)
		if err != nil {
			return nil, fmt.Errorf("generating service %s: %w", svc.Name, err)
		}
		out, err := g.output(services.Filename(svc, ext), content)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
		index.Services = append(index.Services, services.ClassName(svc))
	}

	content, err := g.engine.Execute("runtime.tmpl", runtimeData{BaseURL: result.BaseURL})
	if err != nil {
		return nil, fmt.Errorf("generating runtime: %w", err)
	}
	out, err := g.output("runtime."+ext, content)
	if err != nil {
		return nil, err
	}
	outputs = append(outputs, out)

	content, err = g.engine.Execute("index.tmpl", index)
	if err != nil {
		return nil, fmt.Errorf("generating index: %w", err)
	}
	out, err = g.output("index."+ext, content)
	if err != nil {
		return nil, err
	}
	outputs = append(outputs, out)

	return outputs, nil
}

func (g *Generator) output(filename, content string) (Output, error) {
	if g.config.OutputExtension == "go" {
		formatted, err := Format([]byte(content))
		if err != nil {
			return Output{}, fmt.Errorf("formatting %s: %w", filename, err)
		}
		content = string(formatted)
	}
	return Output{Filename: filename, Content: content}, nil
}
