package identity

import (
	"testing"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"ok", "Secret123", nil},
		{"empty", "", autherr.ErrInvalidArgument},
		{"too short", "abc12", autherr.ErrWeakPassword},
		{"letters only", "abcdefghij", autherr.ErrWeakPassword},
		{"digits only", "1234567890", autherr.ErrWeakPassword},
		{"unicode letters", "пароль1234", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.password, 0)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	got, err := NormalizeEmail("  Ann@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", got)

	for _, bad := range []string{"", "ann", "Ann <ann@example.com>"} {
		_, err := NormalizeEmail(bad)
		assert.ErrorIs(t, err, autherr.ErrInvalidArgument, bad)
	}
}

func TestListeners(t *testing.T) {
	var l Listeners
	var got []string

	remove := l.Add(func(i *Identity) { got = append(got, i.UID) })
	assert.Equal(t, 1, l.Len())

	ident := &Identity{UID: "u1", Providers: []ProviderTag{ProviderPassword}}
	l.Emit(ident)
	remove()
	remove()
	l.Emit(ident)

	assert.Equal(t, []string{"u1"}, got)
	assert.Equal(t, 0, l.Len())
}

func TestIdentityClone(t *testing.T) {
	var nilIdent *Identity
	assert.Nil(t, nilIdent.Clone())

	orig := &Identity{UID: "u", Providers: []ProviderTag{ProviderPassword}}
	c := orig.Clone()
	c.Providers[0] = ProviderGoogle
	assert.Equal(t, ProviderPassword, orig.Providers[0])
}
