package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// themeTokens merges the manifest tokens with the selected variant.
func themeTokens(manifest *theme.Manifest, variant string) map[string]string {
	if manifest == nil {
		return nil
	}
	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	if variant != "" {
		if v, ok := manifest.Variants[variant]; ok {
			for key, value := range v.Tokens {
				tokens[key] = value
			}
		}
	}
	return tokens
}

// cssVarsStyle renders tokens as "--name: value;" declarations in key order.
// Characters that could terminate the declaration block are dropped.
func cssVarsStyle(tokens map[string]string) string {
	if len(tokens) == 0 {
		return ""
	}
	keys := make([]string, 0, len(tokens))
	for key := range tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		name := cssSafe(strings.TrimPrefix(key, "--"))
		value := cssSafe(tokens[key])
		if name == "" || value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("--" + name + ": " + value + ";")
	}
	return b.String()
}

var cssReplacer = strings.NewReplacer("<", "", ">", "", "{", "", "}", "", ";", "", "\n", " ", "\r", " ")

func cssSafe(raw string) string {
	return strings.TrimSpace(cssReplacer.Replace(raw))
}
