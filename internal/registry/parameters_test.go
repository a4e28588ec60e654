package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_ResolveString(t *testing.T) {
	c := NewContainer()
	c.SetParameter("kernel.root_dir", "/srv/app")
	c.SetParameter("kernel.cache_dir", "%kernel.root_dir%/var/cache")
	c.SetParameter("debug", true)
	c.SetParameter("port", 8080)
	c.SetParameter("mappings", map[string]any{})
	c.SetParameter("loop", "%loop%")

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
		anyErr  bool
	}{
		{name: "no placeholder", input: "/tmp/cache", want: "/tmp/cache"},
		{name: "simple", input: "%kernel.root_dir%/web", want: "/srv/app/web"},
		{name: "nested", input: "%kernel.cache_dir%/uploader", want: "/srv/app/var/cache/uploader"},
		{name: "escaped percent", input: "100%% sure", want: "100% sure"},
		{name: "scalars", input: "%debug%:%port%", want: "true:8080"},
		{name: "unknown", input: "%nope%/x", wantErr: ErrParameterNotFound},
		{name: "self reference", input: "%loop%", wantErr: ErrCircularReference},
		{name: "non scalar", input: "%mappings%", anyErr: true},
		{name: "unterminated", input: "%kernel.root_dir", anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ResolveString(tt.input)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
