package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionAnswer   = "answer"
	actionDisabled = "disabled"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildAnswerCallback builds callback data for answering the current
// question. The owner id rides along so a press by anyone else in the
// chat can be rejected.
func buildAnswerCallback(label string, owner int64) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{label, strconv.FormatInt(owner, 10)},
	}.encode()
}

// buildDisabledCallback builds inert callback data for options of an
// already graded question.
func buildDisabledCallback(label string) string {
	return callbackData{
		Action: actionDisabled,
		Params: []string{label},
	}.encode()
}
