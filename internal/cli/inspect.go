package cli

import (
	"fmt"
	"strings"

	"github.com/kolah/swagclient/internal/codegen"
	"github.com/kolah/swagclient/internal/config"
	"github.com/kolah/swagclient/internal/graph"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

func InspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the resolved models and services as a tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}

			result, err := buildResult(cmd, cfg, newLogger(cmd))
			if err != nil {
				return err
			}

			cmd.Println(inspectTree(result).String())
			return nil
		},
	}
}

func inspectTree(result *codegen.Result) treeprint.Tree {
	tree := treeprint.NewWithRoot(result.BaseURL)

	models := tree.AddBranch(fmt.Sprintf("models (%d)", result.Models.Len()))
	for _, m := range result.Models.Models() {
		// Subclasses are listed under their parent.
		if m.Parent == nil {
			addModel(models, m)
		}
	}

	services := tree.AddBranch(fmt.Sprintf("services (%d)", result.Services.Len()))
	for _, svc := range result.Services.Services() {
		branch := services.AddBranch(svc.Name)
		for _, op := range svc.Operations {
			branch.AddNode(fmt.Sprintf("%s %s %s(): %s", op.Method, op.Path, op.ID, op.ResultType))
		}
		if len(svc.DirectDependencies) > 0 {
			branch.AddNode("uses: " + strings.Join(svc.DirectDependencies, ", "))
		}
	}

	return tree
}

func addModel(tree treeprint.Tree, m *graph.Model) {
	label := m.Name
	if m.IsEnum() {
		label += " (enum)"
	}
	branch := tree.AddBranch(label)
	if len(m.DirectDependencies) > 0 {
		branch.AddNode("uses: " + strings.Join(m.DirectDependencies, ", "))
	}
	for _, sub := range m.Subclasses {
		addModel(branch, sub)
	}
}
