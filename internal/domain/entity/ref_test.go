package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_UnmarshalVariantes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Ref
	}{
		{"id plano", `"p1"`, Ref{ID: "p1"}},
		{"objeto poblado", `{"_id":"p1","name":"โต๊ะ"}`, Ref{ID: "p1", Name: "โต๊ะ"}},
		{"objeto con id", `{"id":"u1","email":"a@b.co"}`, Ref{ID: "u1", Email: "a@b.co"}},
		{"null", `null`, Ref{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r Ref
			require.NoError(t, json.Unmarshal([]byte(tc.in), &r))
			assert.Equal(t, tc.want, r)
		})
	}
}

func TestRef_UnmarshalFormatoInvalido(t *testing.T) {
	var r Ref
	assert.Error(t, json.Unmarshal([]byte(`42`), &r))
}

func TestRef_MarshalSoloID(t *testing.T) {
	line := BatchLine{Product: Ref{ID: "p1", Name: "โต๊ะ"}, Color: RefTo("c1"), Quantity: 2}
	out, err := json.Marshal(line)
	require.NoError(t, err)
	assert.JSONEq(t, `{"productId":"p1","colorId":"c1","quantity":2}`, string(out))
}
