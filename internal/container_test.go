//go:build unit

package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/logpilot/internal"
)

func TestRegisterProviders(t *testing.T) {
	t.Run("should resolve the app with every controller wired", func(t *testing.T) {
		// given
		t.Setenv("LOGPILOT_CONFIG", "")
		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))

		// when
		var app *internal.AppInternal
		err := container.Invoke(func(ai *internal.AppInternal) {
			app = ai
		})

		// then
		require.NoError(t, err)
		assert.NotNil(t, app.GetMenuController())

		uses := make([]string, 0, len(app.GetControllers()))
		for _, controller := range app.GetControllers() {
			uses = append(uses, controller.GetBind().Use)
		}
		assert.ElementsMatch(t, []string{"install", "check"}, uses)
	})
}
