package extract

import (
	"strings"

	"github.com/kaptinlin/jsonrepair"

	jsonx "litecal/internal/shared/json"
)

// scanJSONObject locates a JSON object inside free-form model output.
//
// It scans from the first '{' and attempts a parse at every closing brace up
// to the last '}', accepting the first substring that parses. When no
// substring parses directly, the first-to-last brace slice is run through the
// jsonrepair library before giving up, since models routinely emit almost-JSON
// (trailing commas, unquoted keys, fenced code blocks).
func scanJSONObject(text string) (map[string]any, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 || end < start {
		return nil, false
	}

	for i := start; i <= end; i++ {
		if text[i] != '}' {
			continue
		}
		candidate := text[start : i+1]
		var parsed map[string]any
		if err := jsonx.Unmarshal([]byte(candidate), &parsed); err == nil {
			return parsed, true
		}
	}

	repaired, err := jsonrepair.JSONRepair(text[start : end+1])
	if err != nil {
		return nil, false
	}
	var parsed map[string]any
	if err := jsonx.Unmarshal([]byte(repaired), &parsed); err != nil {
		return nil, false
	}
	return parsed, true
}

// Tolerant field coercion: the model is an untrusted text generator, so
// wrong-typed fields default instead of failing the whole extraction.

func asString(values map[string]any, key string) string {
	switch v := values[key].(type) {
	case string:
		return strings.TrimSpace(v)
	default:
		return ""
	}
}

func asBool(values map[string]any, key string) bool {
	switch v := values[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}

func asStringSlice(values map[string]any, key string) []string {
	raw, ok := values[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
