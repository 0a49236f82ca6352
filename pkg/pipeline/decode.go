package pipeline

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"
)

// decode copies payload into out the way a client would read it: numbers
// written as strings and strings written as numbers are converted, a lone
// value where a list is expected becomes a one-element list, and unknown
// keys are ignored. Leaves that still cannot be converted keep their zero
// value; the returned error lists them and is informational only.
func decode(payload []byte, out any) error {
	var raw any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
