package naming

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first letter and leaves the rest untouched:
// "getPetById" -> "GetPetById".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	// Casers are stateful, so one is created per call.
	caser := cases.Title(language.Und, cases.NoLower)
	runes := []rune(s)
	return caser.String(string(runes[0])) + string(runes[1:])
}

func PascalCase(s string) string {
	words := splitWords(s)
	var result strings.Builder
	for _, word := range words {
		result.WriteString(capitalize(word))
	}
	return result.String()
}

func CamelCase(s string) string {
	words := splitWords(s)
	var result strings.Builder
	for i, word := range words {
		if i == 0 {
			result.WriteString(strings.ToLower(word))
		} else {
			result.WriteString(capitalize(word))
		}
	}
	return result.String()
}

func SnakeCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

func KebabCase(s string) string {
	return strings.ReplaceAll(SnakeCase(s), "_", "-")
}

// ConstantName turns an enum literal into an upper snake case identifier:
// "in-stock" -> "IN_STOCK", "2xx" -> "_2XX".
func ConstantName(value string) string {
	name := strings.ToUpper(SnakeCase(sanitize(value)))
	if name == "" {
		return "EMPTY"
	}
	if unicode.IsDigit(rune(name[0])) {
		return "_" + name
	}
	return name
}

// ConstantNames returns one constant name per literal, suffixing repeats
// so the result has no duplicates.
func ConstantNames(values []string) []string {
	names := make([]string, len(values))
	used := make(map[string]int)
	for i, v := range values {
		name := ConstantName(v)
		if n := used[name]; n > 0 {
			used[name] = n + 1
			name = name + "_" + strconv.Itoa(n+1)
		} else {
			used[name] = 1
		}
		names[i] = name
	}
	return names
}

// sanitize replaces characters that cannot appear in identifiers with word
// separators.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, s)
}

func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			prev := rune(s[i-1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				if current.Len() > 0 {
					words = append(words, current.String())
					current.Reset()
				}
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true, "with": true,
}

// EscapeKeyword appends an underscore to TypeScript reserved words.
func EscapeKeyword(s string) string {
	if reservedWords[s] {
		return s + "_"
	}
	return s
}

// QuoteKey quotes a property name when it is not a plain identifier.
func QuoteKey(s string) string {
	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return strconv.Quote(s)
	}
	if s == "" {
		return `""`
	}
	return s
}
