package parsing

import "fmt"

// MarshalYAML renders the program as a list of lines.
func (p *Program) MarshalYAML() (any, error) {
	lines := make([]any, 0, len(p.Lines))
	for _, line := range p.Lines {
		v, err := nodeYAML(line)
		if err != nil {
			return nil, err
		}
		lines = append(lines, v)
	}
	return map[string]any{
		"program": lines,
	}, nil
}

func nodeYAML(node Node) (any, error) {
	switch node := node.(type) {
	case *Line:
		inner, err := nodeYAML(node.Inner)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"line": inner,
		}, nil
	case *VarDefinition:
		return map[string]any{
			"var_definition": map[string]any{
				"name":  node.Name.Text,
				"value": node.Value.Text,
			},
		}, nil
	case *VarName:
		return map[string]any{
			"var_name": node.Text,
		}, nil
	case *Value:
		return map[string]any{
			"value": node.Text,
		}, nil
	}
	return nil, fmt.Errorf("unknown node type %T", node)
}
