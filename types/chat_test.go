package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatResponseWireShape(t *testing.T) {
	data, err := json.Marshal(ChatResponse{Text: "안녕하세요"})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.JSONEq(t, `"안녕하세요"`, string(decoded["text"]))
	// The widget reads videoHtml on every reply; it must be present even
	// when there is no video, as an explicit null.
	raw, ok := decoded["videoHtml"]
	require.True(t, ok)
	assert.Equal(t, "null", string(raw))
}
