package riot

import (
	"regexp"
)

// Params supplies values for the {name} placeholders of an endpoint template.
type Params map[string]string

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Expand replaces every {name} in template with params[name], verbatim. A
// placeholder without a value, or with an empty one, is an error so a request
// never lands on a neighbouring endpoint. Extra params are ignored.
func Expand(template string, params Params) (string, error) {
	var missing string
	out := placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1 : len(token)-1]
		value, ok := params[name]
		if (!ok || value == "") && missing == "" {
			missing = name
		}
		return value
	})
	if missing != "" {
		return "", &MissingParameterError{Name: missing, Template: template}
	}
	return out, nil
}

// Placeholders lists the placeholder names of template in order of appearance.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
