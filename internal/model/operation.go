package model

type Operation struct {
	ID          string
	Method      Method
	Path        string
	Summary     string
	Description string
	Tags        []string
	Parameters  []Parameter
	Responses   []Response
}

type Method string

const (
	MethodGet     Method = "GET"
	MethodPut     Method = "PUT"
	MethodPost    Method = "POST"
	MethodDelete  Method = "DELETE"
	MethodOptions Method = "OPTIONS"
	MethodHead    Method = "HEAD"
	MethodPatch   Method = "PATCH"
)

type ParameterLocation string

const (
	LocationPath     ParameterLocation = "path"
	LocationQuery    ParameterLocation = "query"
	LocationHeader   ParameterLocation = "header"
	LocationBody     ParameterLocation = "body"
	LocationFormData ParameterLocation = "formData"
)

type Parameter struct {
	Name             string
	In               ParameterLocation
	Description      string
	Required         bool
	CollectionFormat string
	// Schema is the body schema for body parameters, otherwise a fragment
	// synthesized from the parameter's own type fields.
	Schema *Schema
}

type Response struct {
	StatusCode  string
	Description string
	Schema      *Schema
}
