package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/osw/internal/core/domain"
)

func TestWorkspace_Merge(t *testing.T) {
	ws := domain.NewWorkspace()
	ws.AddObject(domain.WorkspaceObject{Type: "Output:Variable", Fields: []string{"*", "Zone Mean Air Temperature", "Hourly"}})

	added := ws.Merge([]domain.WorkspaceObject{
		{Type: "OUTPUT:VARIABLE", Fields: []string{"*", "Zone Mean Air Temperature", "Hourly"}},
		{Type: "Output:Variable", Fields: []string{"*", "Site Outdoor Air Drybulb Temperature", "Hourly"}},
		{Type: "Output:Variable", Fields: []string{"*", "Site Outdoor Air Drybulb Temperature", "Hourly"}},
	})

	assert.Equal(t, 1, added)
	assert.Equal(t, 2, ws.Len())
}

func TestWorkspace_CloneAndRemove(t *testing.T) {
	ws := domain.NewWorkspace()
	ws.AddObject(domain.WorkspaceObject{Type: "Building", Fields: []string{"House"}})
	ws.AddObject(domain.WorkspaceObject{Type: "Timestep", Fields: []string{"6"}})

	clone := ws.Clone()
	clone.Objects[0].Fields[0] = "Barn"
	assert.Equal(t, "House", ws.Objects[0].Name())

	assert.Equal(t, 1, clone.RemoveObjectsOfType("timestep"))
	assert.Equal(t, 1, clone.Len())
	assert.Equal(t, 2, ws.Len())
	assert.Empty(t, domain.WorkspaceObject{Type: "Version"}.Name())
}
