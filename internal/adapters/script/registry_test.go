package script_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/osw/internal/adapters/script"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRegistry_Engine(t *testing.T) {
	ctrl := gomock.NewController(t)
	goEngine := mocks.NewMockScriptEngine(ctrl)
	goEngine.EXPECT().Language().Return(domain.LanguageGo)

	reg := script.NewRegistry(goEngine)

	got, err := reg.Engine(domain.LanguageGo)
	require.NoError(t, err)
	assert.Same(t, goEngine, got)

	_, err = reg.Engine(domain.Language("ruby"))
	require.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}
