package chardata

import "github.com/invopop/jsonschema"

// Schema reflects the JSON schema designers validate character sheets
// against.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(&Sheet{})
	schema.Title = "Character Sheet"
	schema.Description = "Animations, hitboxes, attacks and movement for one fighter."
	return schema
}

func (Property) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "string",
		Enum: []interface{}{"High", "Mid", "Low"},
	}
}

func (Backdash) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:          "object",
		Description:   `One of {"Standard": {busy, speed, motion_duration}}, {"Teleport": {busy, distance, motion_duration}} or {"Leap": {busy, motion_duration}}.`,
		MinProperties: 1,
		MaxProperties: 1,
	}
}
