package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name string
		port string
		want int
	}{
		{name: "unset", port: "", want: 3000},
		{name: "custom", port: "8080", want: 8080},
		{name: "not a number", port: "notaport", want: 3000},
		{name: "zero", port: "0", want: 3000},
		{name: "out of range", port: "70000", want: 3000},
		{name: "negative", port: "-1", want: 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)
			t.Setenv("PORT", tt.port)

			cfg := FromEnv()
			r.Equal(tt.want, cfg.Port)
		})
	}
}

func TestAddr(t *testing.T) {
	r := require.New(t)

	cfg := Config{Port: 5000}
	r.Equal("0.0.0.0:5000", cfg.Addr())
}
