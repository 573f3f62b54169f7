package reel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_DescribesReel(t *testing.T) {
	s := Schema()
	require.NotNil(t, s)
	assert.Same(t, s, Schema())

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "Reel", doc["title"])
	assert.Equal(t, false, doc["additionalProperties"])
	assert.ElementsMatch(t, []any{"sourceUrl", "medias"}, doc["required"])

	properties, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"sourceUrl", "author", "title", "thumbnail", "duration", "medias"} {
		assert.Contains(t, properties, key)
	}

	defs, ok := doc["$defs"].(map[string]any)
	require.True(t, ok)
	media, ok := defs["Media"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"url", "type"}, media["required"])
}
