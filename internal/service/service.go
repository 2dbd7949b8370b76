package service

import (
	"github.com/kolah/swagclient/internal/model"
	"github.com/kolah/swagclient/internal/typeexpr"
)

// Service groups the operations that share one tag.
type Service struct {
	Name       string
	Operations []*Operation
	// DirectDependencies lists the models referenced by any operation's
	// parameters or responses.
	DirectDependencies []string
}

type Operation struct {
	ID          string
	Tag         string
	Method      model.Method
	Path        string
	// PathExpression is Path with {name} segments rewritten to ${params.name}.
	PathExpression string
	Summary        string
	Description    string
	Parameters     []Parameter
	// ParamsName is set only when the operation has parameters.
	ParamsName string
	Responses  []Response
	ResultType typeexpr.Type
	ResultKind ResultKind
}

func (o *Operation) HasParameters() bool { return len(o.Parameters) > 0 }

// ParametersIn returns the operation's parameters declared at loc, keeping
// their order.
func (o *Operation) ParametersIn(loc model.ParameterLocation) []Parameter {
	var out []Parameter
	for _, p := range o.Parameters {
		if p.In == loc {
			out = append(out, p)
		}
	}
	return out
}

// BodyParameter returns the body parameter, if any.
func (o *Operation) BodyParameter() *Parameter {
	for i := range o.Parameters {
		if o.Parameters[i].In == model.LocationBody {
			return &o.Parameters[i]
		}
	}
	return nil
}

type Parameter struct {
	Name        string
	In          model.ParameterLocation
	Description string
	Required    bool
	Type        typeexpr.Type
	// CollectionFormat is set for array-typed query and header parameters.
	CollectionFormat string
	Last             bool
}

// Response maps one declared status code to its resolved body type.
type Response struct {
	StatusCode string
	Type       typeexpr.Type
}

// ResultKind classifies an operation's result type.
type ResultKind string

const (
	ResultVoid    ResultKind = "void"
	ResultString  ResultKind = "string"
	ResultNumber  ResultKind = "number"
	ResultBoolean ResultKind = "boolean"
	ResultEnum    ResultKind = "enum"
	ResultObject  ResultKind = "object"
	ResultUnknown ResultKind = "unknown"
)

// Graph is the set of services of one document, indexed by name.
type Graph struct {
	services []*Service
	byName   map[string]*Service
}

func newGraph() *Graph {
	return &Graph{byName: make(map[string]*Service)}
}

// Services returns the services sorted by name.
func (g *Graph) Services() []*Service {
	return g.services
}

func (g *Graph) Get(name string) (*Service, bool) {
	s, ok := g.byName[name]
	return s, ok
}

func (g *Graph) Len() int {
	return len(g.services)
}

func (g *Graph) Remove(name string) bool {
	if _, ok := g.byName[name]; !ok {
		return false
	}
	delete(g.byName, name)
	for i, s := range g.services {
		if s.Name == name {
			g.services = append(g.services[:i], g.services[i+1:]...)
			break
		}
	}
	return true
}
