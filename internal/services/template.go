package services

import (
	"fmt"
	"regexp"
)

var templateVarPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// RenderTemplate replaces every {{identifier}} token that has a non-nil
// entry in variables with the value's string form. Tokens without a value
// are left in the output untouched, braces included. There is no escaping
// for literal {{ sequences.
func RenderTemplate(template string, variables map[string]any) string {
	return templateVarPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[2 : len(token)-2]
		value, ok := variables[name]
		if !ok || value == nil {
			return token
		}
		return fmt.Sprint(value)
	})
}

// ExtractTemplateTokens returns the {{variable}} tokens of a template in
// order of appearance, braces included.
func ExtractTemplateTokens(template string) []string {
	return templateVarPattern.FindAllString(template, -1)
}
