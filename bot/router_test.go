package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markerHandler(invoked *string, name string) HandlerFunc {
	return func(ctx *CommandContext) error {
		*invoked = name
		return nil
	}
}

func newTestRouter(invoked *string) *Router {
	router := NewRouter()
	for _, name := range []string{"help", "ping", "prepare", "list", "spare", "kick", "ban", "report-here", "no-report"} {
		router.Handle(name, markerHandler(invoked, name))
	}
	return router
}

func TestRouter_ExactCommands(t *testing.T) {
	var invoked string
	router := newTestRouter(&invoked)

	for _, name := range []string{"help", "ping", "prepare", "report-here", "no-report"} {
		handler := router.Route(name)
		require.NotNil(t, handler, "command %q", name)
		require.NoError(t, handler(&CommandContext{}))
		assert.Equal(t, name, invoked)
	}
}

func TestRouter_TrailingTokensAreParams(t *testing.T) {
	var invoked string
	router := newTestRouter(&invoked)

	handler := router.Route("prepare 5")
	require.NotNil(t, handler)
	require.NoError(t, handler(&CommandContext{Params: []string{"prepare", "5"}}))
	assert.Equal(t, "prepare", invoked)

	handler = router.Route("spare 0, 2")
	require.NotNil(t, handler)
	require.NoError(t, handler(&CommandContext{}))
	assert.Equal(t, "spare", invoked)
}

func TestRouter_UnknownCommand(t *testing.T) {
	var invoked string
	router := newTestRouter(&invoked)

	assert.Nil(t, router.Route("unknown-cmd"))
	assert.Nil(t, router.Route("unknown-cmd with args"))
}

func TestRouter_NoPartialWordMatch(t *testing.T) {
	var invoked string
	router := newTestRouter(&invoked)

	// "helpme" is not the token "help"; prefixes only count on complete
	// token boundaries.
	assert.Nil(t, router.Route("helpme"))
	assert.Nil(t, router.Route("ba"))
}

func TestRouter_EmptyInput(t *testing.T) {
	var invoked string
	router := newTestRouter(&invoked)

	assert.Nil(t, router.Route(""))
	assert.Nil(t, router.Route("   "))
}
