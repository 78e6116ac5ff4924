package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Smart Plug", "smart-plug"},
		{"  Touch  Panel  ", "touch-panel"},
		{"Éclairage Connecté", "eclairage-connecte"},
		{"KNX/IP Gateway (v2)", "knxip-gateway-v2"},
		{"---", ""},
		{"Already-a-slug", "already-a-slug"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}
