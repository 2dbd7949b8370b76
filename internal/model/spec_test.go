package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootURL(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want string
	}{
		{"defaults", Spec{}, "http://localhost/"},
		{"full", Spec{Schemes: []string{"https", "http"}, Host: "api.example.com", BasePath: "/v1"}, "https://api.example.com/v1"},
		{"base path without slash", Spec{Host: "example.com:8080", BasePath: "api"}, "http://example.com:8080/api"},
		{"empty scheme", Spec{Schemes: []string{""}, Host: "h"}, "http://h/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.spec.RootURL())
		})
	}
}

func TestSchemaHelpers(t *testing.T) {
	s := &Schema{Required: []string{"id"}, Extensions: map[string]string{"x-type": "Date"}}
	require.True(t, s.IsRequired("id"))
	require.False(t, s.IsRequired("name"))

	v, ok := s.Extension("x-type")
	require.True(t, ok)
	require.Equal(t, "Date", v)

	var nilSchema *Schema
	require.False(t, nilSchema.IsRequired("id"))
	_, ok = nilSchema.Extension("x-type")
	require.False(t, ok)
}
