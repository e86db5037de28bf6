package localization_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modflow/backend/internal/localization"
)

func TestLocalizer_CatalogCoversTransportKeys(t *testing.T) {
	l, err := localization.NewLocalizer(".")
	require.NoError(t, err)

	// Every key the bot service looks up must resolve to a real string, not
	// the key-name fallback.
	for _, key := range []string{"help", "auto_deleted_notice", "not_a_moderator"} {
		assert.NotEqual(t, key, l.GetString("en", key), "missing catalog entry for %q", key)
	}
}

func TestLocalizer_FallsBackToDefaultLanguage(t *testing.T) {
	l, err := localization.NewLocalizer(".")
	require.NoError(t, err)

	assert.Equal(t, l.GetString("en", "help"), l.GetString("uk", "help"))
}

func TestLocalizer_UnknownKeyReturnsKey(t *testing.T) {
	l, err := localization.NewLocalizer(".")
	require.NoError(t, err)

	assert.Equal(t, "no_such_key", l.GetString("en", "no_such_key"))
}
