package descriptor

import "encoding/json"

type typeJSON struct {
	Type                     string       `json:"type"`
	Values                   []string     `json:"values,omitempty"`
	Items                    Type         `json:"items,omitempty"`
	Properties               []*Parameter `json:"properties,omitempty"`
	Required                 []string     `json:"required,omitempty"`
	AdditionalProperties     *bool        `json:"additionalProperties,omitempty"`
	AdditionalPropertiesType Type         `json:"additionalPropertiesType,omitempty"`
}

func (p Primitive) MarshalJSON() ([]byte, error) {
	return json.Marshal(typeJSON{Type: p.String()})
}

func (e *Enum) MarshalJSON() ([]byte, error) {
	return json.Marshal(typeJSON{Type: KindEnum.String(), Values: e.Values})
}

func (l *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(typeJSON{Type: KindList.String(), Items: l.Items})
}

func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(typeJSON{
		Type:                     KindObject.String(),
		Properties:               o.Properties,
		Required:                 o.Required,
		AdditionalProperties:     o.AdditionalProperties,
		AdditionalPropertiesType: o.AdditionalPropertiesType,
	})
}
