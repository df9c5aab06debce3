package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanJSONObjectInsideProse(t *testing.T) {
	text := `Sure! Here is the event you asked for:
{"is_event": true, "event_title": "lunch"}
Let me know if you need anything else.`

	values, ok := scanJSONObject(text)
	require.True(t, ok)
	assert.Equal(t, true, values["is_event"])
	assert.Equal(t, "lunch", values["event_title"])
}

func TestScanJSONObjectNestedBraces(t *testing.T) {
	text := `{"outer": {"inner": 1}, "is_event": false}`

	values, ok := scanJSONObject(text)
	require.True(t, ok)
	assert.Contains(t, values, "outer")
	assert.Equal(t, false, values["is_event"])
}

func TestScanJSONObjectCodeFence(t *testing.T) {
	text := "```json\n{\"is_event\": true}\n```"

	values, ok := scanJSONObject(text)
	require.True(t, ok)
	assert.Equal(t, true, values["is_event"])
}

func TestScanJSONObjectRepairsAlmostJSON(t *testing.T) {
	// Trailing comma: no substring parses directly, the repair pass catches it.
	values, ok := scanJSONObject(`{"is_event": true,}`)
	require.True(t, ok)
	assert.Equal(t, true, values["is_event"])
}

func TestScanJSONObjectNoBraces(t *testing.T) {
	_, ok := scanJSONObject("I could not find an event in that message.")
	assert.False(t, ok)
}

func TestScanJSONObjectUnclosedBrace(t *testing.T) {
	_, ok := scanJSONObject("an { unclosed brace")
	assert.False(t, ok)
}

func TestAsHelpersTolerateWrongTypes(t *testing.T) {
	values := map[string]any{
		"event_title": 42,
		"is_event":    "true",
		"attendees":   []any{"a@example.com", 7, "b@example.com"},
	}

	assert.Equal(t, "", asString(values, "event_title"))
	assert.True(t, asBool(values, "is_event"))
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, asStringSlice(values, "attendees"))
	assert.Equal(t, "", asString(values, "missing"))
	assert.False(t, asBool(values, "missing"))
	assert.Nil(t, asStringSlice(values, "missing"))
}
