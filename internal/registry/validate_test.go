package registry

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_Validate(t *testing.T) {
	t.Run("clean container", func(t *testing.T) {
		c := NewContainer()
		require.NoError(t, c.Define("uploader.adapter.orm", NewDefinition("OrmAdapter")))
		require.NoError(t, c.Define("uploader.listener.upload.orm", NewTemplate("UploadListener", "", Reference("uploader.adapter.missing"))))

		dec := NewDecorator("uploader.listener.upload.orm")
		require.NoError(t, dec.ReplaceArgument(1, Reference("uploader.adapter.orm")))
		require.NoError(t, c.Define("uploader.listener.upload.avatar", dec))
		require.NoError(t, c.Alias("uploader.adapter", Alias{Target: "uploader.adapter.orm"}))

		// the abstract template's dangling reference is not reported
		assert.NoError(t, c.Validate())
	})

	t.Run("reports every problem", func(t *testing.T) {
		c := NewContainer()
		require.NoError(t, c.Alias("uploader.storage", Alias{Target: "my_storage"}))
		require.NoError(t, c.Define("uploader.namer.uniqid.avatar", NewDecorator("uploader.namer.missing")))
		require.NoError(t, c.Define("svc", NewDefinition("S", []any{Reference("dangling")})))

		err := c.Validate()
		require.Error(t, err)

		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		assert.Len(t, merr.Errors, 3)
		assert.Contains(t, err.Error(), `alias "uploader.storage" is unresolved`)
		assert.Contains(t, err.Error(), "uploader.namer.missing")
		assert.Contains(t, err.Error(), `"dangling"`)
	})

	t.Run("alias loop", func(t *testing.T) {
		c := NewContainer()
		require.NoError(t, c.Alias("a", Alias{Target: "b"}))
		require.NoError(t, c.Alias("b", Alias{Target: "a"}))

		err := c.Validate()
		require.ErrorIs(t, err, ErrCircularReference)
	})
}

func TestContainer_ValidateOptionalReference(t *testing.T) {
	c := NewContainer()

	def := NewDefinition("MetadataFactory")
	def.AddCall("SetCache", OptionalReference("uploader.metadata.cache"))
	require.NoError(t, c.Define("uploader.metadata_factory", def))

	assert.NoError(t, c.Validate())
	assert.Equal(t, "@?uploader.metadata.cache", OptionalReference("uploader.metadata.cache").String())
}
