package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kolah/swagclient/internal/diag"
	"go.yaml.in/yaml/v4"
)

// checkReferences rejects any $ref that is not a local JSON pointer.
func checkReferences(root *yaml.Node) error {
	return walkReferences(root, "#")
}

func walkReferences(node *yaml.Node, pointer string) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			if err := walkReferences(child, pointer); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			child := pointer + "/" + escapePointer(key.Value)
			if key.Value == "$ref" && value.Kind == yaml.ScalarNode {
				if !strings.HasPrefix(value.Value, "#/") {
					return diag.NewError(diag.CodeInvalidReference, child,
						fmt.Sprintf("reference %q must be a local pointer starting with #/", value.Value))
				}
				continue
			}
			if err := walkReferences(value, child); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for i, child := range node.Content {
			if err := walkReferences(child, pointer+"/"+strconv.Itoa(i)); err != nil {
				return err
			}
		}
	}

	return nil
}

func escapePointer(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}
