package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/retail-ingest/internal/application/dto"
)

func TestPageRequest_Normalize(t *testing.T) {
	cases := []struct {
		name string
		in   dto.PageRequest
		want dto.PageRequest
	}{
		{"vacía", dto.PageRequest{}, dto.PageRequest{Limit: dto.DefaultPageLimit}},
		{"válida", dto.PageRequest{Limit: 5, Offset: 10}, dto.PageRequest{Limit: 5, Offset: 10}},
		{"límite alto", dto.PageRequest{Limit: 1000}, dto.PageRequest{Limit: dto.MaxPageLimit}},
		{"negativos", dto.PageRequest{Limit: -3, Offset: -1}, dto.PageRequest{Limit: dto.DefaultPageLimit}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}
