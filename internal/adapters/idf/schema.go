package idf

import "go.trai.ch/osw/internal/core/domain"

// SchemaEnergyPlus names the only workspace schema this package understands.
const SchemaEnergyPlus = domain.WorkspaceSchema

// draftSchema requires well-formed objects.
const draftSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "objects"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "objects": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "type": {"type": "string", "minLength": 1},
          "fields": {"type": ["array", "null"], "items": {"type": "string"}}
        }
      }
    }
  }
}`

// finalSchema additionally requires the objects no simulation can run without.
const finalSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "objects": {
      "type": "array",
      "allOf": [
        {"contains": {"properties": {"type": {"type": "string", "pattern": "^(?i)building$"}}, "required": ["type"]}},
        {"contains": {"properties": {"type": {"type": "string", "pattern": "^(?i)timestep$"}}, "required": ["type"]}}
      ]
    }
  }
}`
