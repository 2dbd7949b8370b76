package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kolah/swagclient/internal/codegen"
	"github.com/kolah/swagclient/internal/config"
	"github.com/spf13/cobra"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a TypeScript client from a Swagger 2.0 document",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}

	config.BindGenerateFlags(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}
	if err := cfg.ValidateOutput(); err != nil {
		return err
	}

	logger := newLogger(cmd)

	result, err := buildResult(cmd, cfg, logger)
	if err != nil {
		return err
	}

	gen, err := codegen.New(cfg)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	outputs, err := gen.Generate(result)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	if cfg.DryRun {
		for _, out := range outputs {
			cmd.Printf("// %s\n%s\n", out.Filename, out.Content)
		}
		return nil
	}

	for _, out := range outputs {
		path := filepath.Join(cfg.OutputDir, filepath.FromSlash(out.Filename))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(out.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Debug("written", "path", path)
	}
	logger.Info("generated client", "files", len(outputs), "dir", cfg.OutputDir)

	return nil
}
