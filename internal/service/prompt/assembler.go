package prompt

import (
	"fmt"
	"strings"

	"callprep/internal/domain/models"
)

// TaskDelimiter separates the instruction block from the task restatement
// when both travel in a single combined message. Models without a separate
// instruction channel still receive the full methodology text; the marker
// keeps the task visually distinct from the rules.
const TaskDelimiter = "--- TASK ---"

// unspecifiedValue stands in for optional fields the user left empty.
const unspecifiedValue = "(not specified)"

// Assemble turns a call context into exactly one request payload.
//
// When the model supports a structured instruction channel, the rendered
// template travels as the system instruction and the user message carries
// only a compact restatement of the context fields. Otherwise everything is
// combined into a single message: instruction, delimiter, restatement, in
// that order.
//
// Assemble is a pure function of its inputs: no service calls, no mutation,
// identical inputs yield byte-identical payloads.
func Assemble(tpl Template, callCtx models.CallContext, supportsSystemInstruction bool) (models.RequestPayload, error) {
	rendered, err := tpl.Render(callCtx)
	if err != nil {
		return models.RequestPayload{}, err
	}

	restatement := Restate(callCtx)

	if supportsSystemInstruction {
		return models.RequestPayload{
			SystemInstruction: rendered,
			Message:           restatement,
		}, nil
	}

	return models.RequestPayload{
		Message: rendered + "\n\n" + TaskDelimiter + "\n\n" + restatement,
	}, nil
}

// Restate produces the compact field summary that travels as the user
// message: one "Label: value" line per field, in context order. Enum fields
// show their display label; empty optional fields are marked unspecified
// rather than dropped, so the model sees the full shape of the form.
func Restate(callCtx models.CallContext) string {
	var b strings.Builder

	for _, field := range callCtx.Fields() {
		value := field.DisplayValue()
		if value == "" {
			value = unspecifiedValue
		}
		fmt.Fprintf(&b, "%s: %s\n", field.Label, value)
	}

	return strings.TrimRight(b.String(), "\n")
}
