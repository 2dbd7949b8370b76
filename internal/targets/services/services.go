package services

import (
	"strings"

	"github.com/kolah/swagclient/internal/graph"
	"github.com/kolah/swagclient/internal/model"
	"github.com/kolah/swagclient/internal/naming"
	"github.com/kolah/swagclient/internal/service"
	"github.com/kolah/swagclient/internal/templates"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "services"
}

type serviceData struct {
	Name       string
	ClassName  string
	Imports    []string
	Operations []operationData
}

type operationData struct {
	ID             string
	MethodName     string
	HTTPMethod     string
	Path           string
	PathExpression string
	Doc            string
	ParamsName     string
	ParamsOptional bool
	Parameters     []parameterData
	QueryParams    []parameterData
	HeaderParams   []parameterData
	FormParams     []parameterData
	Body           *parameterData
	ResultType     string
	ResultKind     string
}

type parameterData struct {
	Name             string
	Key              string
	Access           string
	Type             string
	Required         bool
	Description      string
	CollectionFormat string
	Last             bool
}

func (t *Target) Generate(engine templates.Engine, svc *service.Service, models *graph.Graph) (string, error) {
	data := serviceData{
		Name:      svc.Name,
		ClassName: ClassName(svc),
	}

	for _, dep := range svc.DirectDependencies {
		if _, ok := models.Get(dep); ok {
			data.Imports = append(data.Imports, dep)
		}
	}

	for _, op := range svc.Operations {
		data.Operations = append(data.Operations, operationFor(op))
	}

	return engine.Execute("service.tmpl", data)
}

func operationFor(op *service.Operation) operationData {
	od := operationData{
		ID:             op.ID,
		MethodName:     naming.EscapeKeyword(naming.CamelCase(op.ID)),
		HTTPMethod:     string(op.Method),
		Path:           op.Path,
		PathExpression: op.PathExpression,
		Doc:            doc(op.Summary, op.Description),
		ParamsName:     op.ParamsName,
		ParamsOptional: true,
		ResultType:     op.ResultType.String(),
		ResultKind:     string(op.ResultKind),
	}

	for _, p := range op.Parameters {
		pd := parameterData{
			Name:             p.Name,
			Key:              naming.QuoteKey(p.Name),
			Access:           naming.Accessor("params", p.Name),
			Type:             p.Type.String(),
			Required:         p.Required,
			Description:      p.Description,
			CollectionFormat: p.CollectionFormat,
			Last:             p.Last,
		}
		if p.Required {
			od.ParamsOptional = false
		}
		od.Parameters = append(od.Parameters, pd)

		switch p.In {
		case model.LocationQuery:
			od.QueryParams = append(od.QueryParams, pd)
		case model.LocationHeader:
			od.HeaderParams = append(od.HeaderParams, pd)
		case model.LocationFormData:
			od.FormParams = append(od.FormParams, pd)
		case model.LocationBody:
			body := pd
			od.Body = &body
		}
	}

	return od
}

func doc(summary, description string) string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(summary); s != "" {
		parts = append(parts, s)
	}
	if d := strings.TrimSpace(description); d != "" && d != strings.TrimSpace(summary) {
		parts = append(parts, d)
	}
	return strings.Join(parts, "\n\n")
}

func ClassName(svc *service.Service) string {
	return naming.PascalCase(svc.Name) + "Service"
}

func Filename(svc *service.Service, ext string) string {
	return "services/" + ClassName(svc) + "." + ext
}
