package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kolah/swagclient/internal/diag"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := RootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerateWritesFiles(t *testing.T) {
	out := t.TempDir()

	_, stderr, err := execute(t, "generate", "--spec", "testdata/petstore.yaml", "--output-dir", out, "--include-tags", "Pets")
	require.NoError(t, err)

	for _, name := range []string{
		"models/Animal.ts", "models/Pet.ts", "models/Owner.ts", "models/Address.ts", "models/Status.ts",
		"services/PetsService.ts", "runtime.ts", "index.ts",
	} {
		require.FileExists(t, filepath.Join(out, filepath.FromSlash(name)))
	}
	require.NoFileExists(t, filepath.Join(out, "models", "User.ts"))
	require.NoFileExists(t, filepath.Join(out, "services", "UsersService.ts"))

	require.Contains(t, stderr, "level=WARN")
	require.Contains(t, stderr, "skipping operation without operationId")
	require.Contains(t, stderr, "generated client")
}

func TestGenerateDryRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "never")

	stdout, _, err := execute(t, "generate", "--spec", "testdata/petstore.yaml", "--output-dir", out, "--dry-run", "--output-extension", ".tsx")
	require.NoError(t, err)

	require.Contains(t, stdout, "// models/User.tsx\n")
	require.Contains(t, stdout, "// services/UsersService.tsx\n")
	require.Contains(t, stdout, "export class PetsService {")
	require.NotContains(t, stdout, "// models/Orphan.tsx")
	require.NoDirExists(t, out)
}

func TestGenerateKeepsUnusedModels(t *testing.T) {
	stdout, _, err := execute(t, "generate", "--spec", "testdata/petstore.yaml", "--dry-run", "--ignore-unused-models=false")
	require.NoError(t, err)
	require.Contains(t, stdout, "// models/Orphan.ts\n")
}

func TestGenerateRequiresOutputDir(t *testing.T) {
	_, _, err := execute(t, "generate", "--spec", "testdata/petstore.yaml")
	require.ErrorContains(t, err, "output directory is required")
}

func TestGenerateFatalInput(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "bad.yaml")
	content := `swagger: "2.0"
info: {title: bad, version: "1"}
paths: {}
definitions:
  Status:
    type: string
    enum: []
`
	require.NoError(t, os.WriteFile(spec, []byte(content), 0o644))

	_, _, err := execute(t, "generate", "--spec", spec, "--dry-run")
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, "#/definitions/Status", derr.Pointer)
}

func TestInspect(t *testing.T) {
	stdout, _, err := execute(t, "inspect", "--spec", "testdata/petstore.yaml", "--include-tags", "Pets")
	require.NoError(t, err)

	require.Contains(t, stdout, "http://api.example.com/v2")
	require.Contains(t, stdout, "models (5)")
	require.Contains(t, stdout, "Status (enum)")
	require.Contains(t, stdout, "services (1)")
	require.Contains(t, stdout, "GET /pets listPets(): Pet[]")
	require.Contains(t, stdout, "uses: Pet, Status")
	require.NotContains(t, stdout, "Users")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	require.Contains(t, stdout, "swagclient version")
}
