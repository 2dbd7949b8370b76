package naming

import (
	"strconv"
	"strings"
	"text/template"
)

func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"pascalCase":    PascalCase,
		"camelCase":     CamelCase,
		"snakeCase":     SnakeCase,
		"kebabCase":     KebabCase,
		"capitalize":    Capitalize,
		"constantName":  ConstantName,
		"escapeKeyword": EscapeKeyword,
		"quoteKey":      QuoteKey,
		"accessor":      Accessor,
		"quote":         strconv.Quote,
		"comment":       Comment,
		"lower":         strings.ToLower,
		"upper":         strings.ToUpper,
		"join":          strings.Join,
		"hasPrefix":     strings.HasPrefix,
		"hasSuffix":     strings.HasSuffix,
		"trimPrefix":    strings.TrimPrefix,
		"trimSuffix":    strings.TrimSuffix,
		"dict":          Dict,
	}
}

// Comment renders text as a JSDoc block indented by indent. Empty text
// renders nothing.
func Comment(text, indent string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(indent + "/**\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.ReplaceAll(strings.TrimRight(line, " \t"), "*/", "*\\/")
		if line == "" {
			b.WriteString(indent + " *\n")
			continue
		}
		b.WriteString(indent + " * " + line + "\n")
	}
	b.WriteString(indent + " */\n")
	return b.String()
}

// Accessor renders a member access on obj, falling back to bracket notation
// for names that are not plain identifiers.
func Accessor(obj, name string) string {
	if key := QuoteKey(name); key != name {
		return obj + "[" + key + "]"
	}
	return obj + "." + name
}

// Dict builds a map from alternating key/value arguments, for passing several
// values into a nested template.
func Dict(values ...any) map[string]any {
	m := make(map[string]any, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			continue
		}
		m[key] = values[i+1]
	}
	return m
}
