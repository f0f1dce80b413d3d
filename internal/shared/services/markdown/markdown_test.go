package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("**Reset** your password\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Reset</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestStripTags(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "A quiet film", "A quiet film"},
		{"markup", "<p>A <b>quiet</b> film</p>", "A quiet film"},
		{"script", "Hello<script>alert(1)</script>", "Hello"},
		{"entities kept readable", "Tom & Jerry", "Tom & Jerry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.StripTags(tt.in))
		})
	}
}
