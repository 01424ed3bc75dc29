package req

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Value string `json:"value"`
}

func TestDecode(t *testing.T) {
	p, err := Decode[payload](strings.NewReader(`{"value":"X"}`))
	require.NoError(t, err)
	assert.Equal(t, "X", p.Value)

	_, err = Decode[payload](strings.NewReader(`{"value":"X","extra":1}`))
	assert.Error(t, err)

	_, err = Decode[payload](strings.NewReader(`not json`))
	assert.Error(t, err)
}
