package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"jwt": map[string]any{
			"accessTokenMinutes": 5,
			"refreshTokenHours":  24,
			"loginProvider":      "LibraryApi",
		},
		"postgres": map[string]any{
			"sslMode":      "disable",
			"maxOpenConns": 10,
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{
			name:   "aligns segment with existing camelCase key",
			rawKey: "POSTGRES_SSLMODE",
			want:   "postgres.sslMode",
		},
		{
			name:   "aligns nested jwt key",
			rawKey: "JWT_ACCESSTOKENMINUTES",
			want:   "jwt.accessTokenMinutes",
		},
		{
			name:   "unknown segments fall back to lowercase",
			rawKey: "JWT_UNKNOWNFIELD",
			want:   "jwt.unknownfield",
		},
		{
			name:   "fully unknown path",
			rawKey: "SOMETHING_ELSE",
			want:   "something.else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "maxopenconns", normalizeToken("max_open_conns"))
	assert.Equal(t, "", normalizeToken("___"))
}
