package model

import "strings"

// systemInstructionFamilies are the model-family substrings whose members
// accept a separate systemInstruction field on generate calls.
var systemInstructionFamilies = []string{
	"gemini-1.5",
	"gemini-2",
}

// SupportsSystemInstruction reports whether the identified model accepts a
// separate system-instruction channel.
//
// This is a naming-convention heuristic, not a verified capability query:
// the backend's model list does not expose an instruction-channel field, so
// we classify by family substring (1.5 and later support it, the base
// gemini-pro generation does not). If the list response ever grows a real
// capability field, prefer it over this.
func SupportsSystemInstruction(name string) bool {
	lower := strings.ToLower(name)
	for _, family := range systemInstructionFamilies {
		if strings.Contains(lower, family) {
			return true
		}
	}
	return false
}
