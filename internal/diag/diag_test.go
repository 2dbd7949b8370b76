package diag

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"pointer", NewError(CodeEmptyEnum, "#/definitions/Status", "enum must declare at least one value"),
			"#/definitions/Status: enum must declare at least one value"},
		{"message only", NewError(CodeInvalidDefinition, "", "bad shape"), "bad shape"},
		{"location and cause", WrapError(CodeInput, "api.yaml", "reading spec file", fs.ErrNotExist),
			"api.yaml: reading spec file: file does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorIs(t *testing.T) {
	var err error = fmt.Errorf("building models: %w", NewError(CodeEmptyEnum, "#/definitions/S", "empty"))

	require.ErrorIs(t, err, ErrEmptyEnum)
	require.NotErrorIs(t, err, ErrInvalidDefinition)

	var derr *Error
	require.True(t, errors.As(err, &derr))
	require.Equal(t, CodeEmptyEnum, derr.Code)

	wrapped := WrapError(CodeInput, "x.yaml", "reading", fs.ErrNotExist)
	require.ErrorIs(t, wrapped, ErrInput)
	require.ErrorIs(t, wrapped, fs.ErrNotExist)
}

func TestDiagnostics(t *testing.T) {
	d := New()
	d.Infof("", "service %s excluded", "Users")
	d.Warnf("#/paths/~1pets/get", "skipping operation with %d tags", 0)

	require.Equal(t, 2, d.Len())
	require.Len(t, d.Warnings(), 1)
	require.Equal(t, "#/paths/~1pets/get: skipping operation with 0 tags", d.Warnings()[0].String())
	require.Equal(t, "service Users excluded", d.All()[0].String())

	var buf bytes.Buffer
	d.Log(slog.New(slog.NewTextHandler(&buf, nil)))
	require.Contains(t, buf.String(), "level=INFO msg=\"service Users excluded\"")
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "pointer=#/paths/~1pets/get")
}

func TestNilDiagnostics(t *testing.T) {
	var d *Diagnostics
	d.Warnf("", "ignored")
	require.Zero(t, d.Len())
	require.Nil(t, d.All())
}
