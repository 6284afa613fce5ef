package descriptor

// Parameter describes one named tool parameter or object field.
type Parameter struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        Type   `json:"type"`
}

// Tool describes a callable tool and its parameters partitioned by whether
// they are required.
type Tool struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Required    []*Parameter `json:"requiredParameters"`
	Optional    []*Parameter `json:"optionalParameters"`
}

// Parameters returns required parameters followed by optional ones.
func (t *Tool) Parameters() []*Parameter {
	result := make([]*Parameter, 0, len(t.Required)+len(t.Optional))
	result = append(result, t.Required...)
	return append(result, t.Optional...)
}

// Parameter returns the named parameter and whether it is required.
func (t *Tool) Parameter(name string) (*Parameter, bool) {
	for _, p := range t.Required {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range t.Optional {
		if p.Name == name {
			return p, false
		}
	}
	return nil, false
}
