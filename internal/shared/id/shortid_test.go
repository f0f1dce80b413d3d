package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ref, err := New(PrefixArtwork)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "art_"))
	assert.Len(t, ref, len("art_")+DefaultLength)
	assert.NoError(t, Validate(ref, PrefixArtwork))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		prefix  string
		wantErr bool
	}{
		{"valid", "art_0123456789Ab", PrefixArtwork, false},
		{"wrong prefix", "acc_0123456789Ab", PrefixArtwork, true},
		{"no separator", "art0123456789Ab", PrefixArtwork, true},
		{"short body", "art_0123", PrefixArtwork, true},
		{"bad character", "art_0123456789-b", PrefixArtwork, true},
		{"empty", "", PrefixArtwork, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.ref, tt.prefix)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
