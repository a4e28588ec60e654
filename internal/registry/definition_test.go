package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefinition_MarshalYAML(t *testing.T) {
	def := NewDefinition("Factory", Reference("uploader.metadata.driver"), "%uploader.mappings%").
		AddCall("SetCache", OptionalReference("uploader.metadata.cache"))

	out, err := yaml.Marshal(def)
	require.NoError(t, err)

	assert.Contains(t, string(out), "@uploader.metadata.driver")
	assert.Contains(t, string(out), "@?uploader.metadata.cache")
	assert.Contains(t, string(out), "method: SetCache")
}

func TestDefinition_ReplaceArgumentOnDecorator(t *testing.T) {
	def := NewDecorator("uploader.listener.upload.orm")

	require.NoError(t, def.ReplaceArgument(5, "x"))
	assert.Equal(t, map[int]any{5: "x"}, def.Replacements)
	assert.Nil(t, def.Arguments)

	require.ErrorIs(t, def.ReplaceArgument(-1, "x"), ErrInvalidArgumentIndex)
}
