package padconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	s := Schema()
	require.NotNil(t, s)
	assert.Equal(t, SchemaID, string(s.ID))

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "object", doc["type"])
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "schema should have properties")
	assert.Contains(t, props, "rules")
	assert.Contains(t, props, "separator")
	assert.Contains(t, props, "columns")

	rules, ok := props["rules"].(map[string]any)
	require.True(t, ok)
	ruleProps, ok := rules["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, ruleProps, "pad_char")
	assert.Contains(t, ruleProps, "truncate")
	assert.Contains(t, ruleProps, "use_ellipsis")

	assert.Contains(t, string(data), `"enum":["left","right"]`)
}
