package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/daniel-kun/hiptest-publisher/internal/nodes"
)

// RenderNode writes an indented dump of the tree rooted at node.
func RenderNode(w io.Writer, node nodes.Node) {
	renderNode(w, node, 0)
}

func line(w io.Writer, depth int, kind nodes.Kind, detail string) {
	indent := strings.Repeat("  ", depth)
	text := kindStyle.Render(string(kind))
	if detail != "" {
		text += " " + dimStyle.Render(detail)
	}
	fmt.Fprintln(w, indent+text)
}

func renderAll(w io.Writer, items []nodes.Node, depth int) {
	for _, item := range items {
		renderNode(w, item, depth)
	}
}

func renderNode(w io.Writer, node nodes.Node, depth int) {
	switch n := node.(type) {
	case *nodes.NullLiteral:
		line(w, depth, n.Kind(), "")
	case *nodes.StringLiteral:
		line(w, depth, n.Kind(), fmt.Sprintf("%q", n.Value))
	case *nodes.NumericLiteral:
		line(w, depth, n.Kind(), n.Value)
	case *nodes.BooleanLiteral:
		line(w, depth, n.Kind(), fmt.Sprintf("%t", n.Value))
	case *nodes.Variable:
		line(w, depth, n.Kind(), n.Name)
	case *nodes.Field:
		line(w, depth, n.Kind(), n.Name)
		renderNode(w, n.Base, depth+1)
	case *nodes.Index:
		line(w, depth, n.Kind(), "")
		renderNode(w, n.Base, depth+1)
		renderNode(w, n.Expression, depth+1)
	case *nodes.BinaryExpression:
		line(w, depth, n.Kind(), n.Operator)
		renderNode(w, n.Left, depth+1)
		renderNode(w, n.Right, depth+1)
	case *nodes.UnaryExpression:
		line(w, depth, n.Kind(), n.Operator)
		renderNode(w, n.Operand, depth+1)
	case *nodes.Parenthesis:
		line(w, depth, n.Kind(), "")
		renderNode(w, n.Expression, depth+1)
	case *nodes.List:
		line(w, depth, n.Kind(), "")
		renderAll(w, n.Items, depth+1)
	case *nodes.Dict:
		line(w, depth, n.Kind(), "")
		for _, property := range n.Properties {
			line(w, depth+1, nodes.Kind(property.Key), "")
			renderNode(w, property.Value, depth+2)
		}
	case *nodes.Template:
		line(w, depth, n.Kind(), "")
		renderAll(w, n.Fragments, depth+1)
	case *nodes.Assign:
		line(w, depth, n.Kind(), "")
		renderNode(w, n.To, depth+1)
		renderNode(w, n.Value, depth+1)
	case *nodes.Argument:
		line(w, depth, n.Kind(), n.Name)
		renderNode(w, n.Value, depth+1)
	case *nodes.Call:
		line(w, depth, n.Kind(), n.Actionword)
		for _, argument := range n.Arguments {
			renderNode(w, argument, depth+1)
		}
	case *nodes.IfThen:
		line(w, depth, n.Kind(), "")
		renderNode(w, n.Condition, depth+1)
		renderAll(w, n.Then, depth+1)
		renderAll(w, n.Else, depth+1)
	case *nodes.Step:
		line(w, depth, n.Kind(), n.Key)
		renderNode(w, n.Value, depth+1)
	case *nodes.While:
		line(w, depth, n.Kind(), "")
		renderNode(w, n.Condition, depth+1)
		renderAll(w, n.Body, depth+1)
	case *nodes.Tag:
		detail := n.Key
		if n.HasValue {
			detail += ":" + n.Value
		}
		line(w, depth, n.Kind(), detail)
	case *nodes.Parameter:
		line(w, depth, n.Kind(), n.Name)
		if n.Default != nil {
			renderNode(w, n.Default, depth+1)
		}
	case *nodes.Actionword:
		line(w, depth, n.Kind(), n.Name)
		for _, tag := range n.Tags {
			renderNode(w, tag, depth+1)
		}
		for _, parameter := range n.Parameters {
			renderNode(w, parameter, depth+1)
		}
		renderAll(w, n.Steps, depth+1)
	case *nodes.Scenario:
		line(w, depth, n.Kind(), n.Name)
		for _, tag := range n.Tags {
			renderNode(w, tag, depth+1)
		}
		for _, parameter := range n.Parameters {
			renderNode(w, parameter, depth+1)
		}
		renderAll(w, n.Steps, depth+1)
	case *nodes.Scenarios:
		line(w, depth, n.Kind(), "")
		for _, scenario := range n.Items {
			renderNode(w, scenario, depth+1)
		}
	case *nodes.Actionwords:
		line(w, depth, n.Kind(), "")
		for _, actionword := range n.Items {
			renderNode(w, actionword, depth+1)
		}
	case *nodes.Project:
		line(w, depth, n.Kind(), n.Name)
		renderNode(w, n.Scenarios, depth+1)
		renderNode(w, n.Actionwords, depth+1)
	default:
		line(w, depth, "unknown", "")
	}
}
