package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

type specRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func TestParseArrayFieldRoundTrip(t *testing.T) {
	in := []specRow{{Label: "Voltage", Value: "12V"}}

	raw := MarshalArrayField(in)
	out := ParseArrayField[specRow](raw)

	assert.Equal(t, in, out)
}

func TestParseArrayFieldMalformed(t *testing.T) {
	cases := []datatypes.JSON{
		nil,
		datatypes.JSON(""),
		datatypes.JSON("not json"),
		datatypes.JSON(`{"object":"not array"}`),
		datatypes.JSON("null"),
	}

	for _, raw := range cases {
		out := ParseArrayField[string](raw)
		assert.NotNil(t, out, "input %q", string(raw))
		assert.Empty(t, out, "input %q", string(raw))
	}
}

func TestMarshalArrayFieldNil(t *testing.T) {
	assert.Equal(t, datatypes.JSON("[]"), MarshalArrayField[string](nil))
}
