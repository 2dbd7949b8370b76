package model

import "strings"

// Spec is a parsed Swagger 2.0 document reduced to what type and service
// resolution needs.
type Spec struct {
	Info        Info
	Host        string
	BasePath    string
	Schemes     []string
	Definitions []Definition
	Paths       []Path
}

// Definition is a named entry of the document's definitions section.
type Definition struct {
	Name   string
	Schema *Schema
}

// RootURL synthesizes scheme://host/basePath with the defaults http,
// localhost and "/".
func (s *Spec) RootURL() string {
	scheme := "http"
	if len(s.Schemes) > 0 && s.Schemes[0] != "" {
		scheme = s.Schemes[0]
	}
	host := s.Host
	if host == "" {
		host = "localhost"
	}
	basePath := s.BasePath
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return scheme + "://" + host + basePath
}

type Info struct {
	Title       string
	Description string
	Version     string
}

type Path struct {
	Path       string
	Operations []Operation
}
