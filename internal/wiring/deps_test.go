package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/osw/internal/app"
	_ "go.trai.ch/osw/internal/wiring"
)

// TestGraph_Components resolves the full node graph the CLI starts from.
func TestGraph_Components(t *testing.T) {
	c, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	assert.NotNil(t, c.App)
	assert.NotNil(t, c.Logger)
}
