package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uploadwire/internal/diagnostic"
)

func mustParse(t *testing.T, yaml string) *Config {
	t.Helper()

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return cfg
}

func findError(d *diagnostic.Diagnostics, code string) (diagnostic.Diagnostic, bool) {
	for _, e := range d.Errors {
		if e.Code == code {
			return e, true
		}
	}

	return diagnostic.Diagnostic{}, false
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := mustParse(t, `
db_driver: orm
metadata:
  directories:
    - path: "@AcmeBundle/Resources/config/uploads"
      namespace_prefix: Acme\Entity
mappings:
  avatar:
    upload_destination: /var/uploads/avatars
    namer: uploader.namer_uniqid
`)

	result := Validate(cfg)
	assert.True(t, result.IsValid(), "expected valid config, got errors: %v", result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	result := Validate(nil)
	assert.False(t, result.IsValid())
	assert.Equal(t, []string{"config_is_nil"}, result.Codes())
}

func TestValidate_MissingUploadDestination(t *testing.T) {
	cfg := mustParse(t, "mappings:\n  avatar: ~\n")

	result := Validate(cfg)
	require.False(t, result.IsValid())

	d, ok := findError(result, "missing_value")
	require.True(t, ok)
	assert.Equal(t, "mappings[0]", d.Section)
	assert.Equal(t, "upload_destination", d.Key)
	assert.Contains(t, result.Error().Error(), "upload_destination is required")
}

func TestValidate_UnknownDefaultDriver(t *testing.T) {
	cfg := mustParse(t, "db_driver: orn\n")

	result := Validate(cfg)
	require.False(t, result.IsValid())

	d, ok := findError(result, "unknown_driver")
	require.True(t, ok)
	assert.Equal(t, []string{"orm"}, d.Suggestions)
	assert.Contains(t, result.Error().Error(), `did you mean "orm"?`)
}

func TestValidate_EmptyDefaultDriver(t *testing.T) {
	cfg := mustParse(t, "db_driver: \"\"\n")

	result := Validate(cfg)
	_, ok := findError(result, "missing_value")
	assert.True(t, ok)
}

func TestValidate_CustomMappingDriverIsWarning(t *testing.T) {
	cfg := mustParse(t, `
mappings:
  avatar:
    upload_destination: /x
    db_driver: couchdb
`)

	result := Validate(cfg)
	assert.True(t, result.IsValid())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "custom_driver", result.Warnings[0].Code)
	assert.Equal(t, "mappings.avatar", result.Warnings[0].Section)
}

func TestValidate_Metadata(t *testing.T) {
	cfg := mustParse(t, `
metadata:
  file_cache:
    dir: ""
  directories:
    - path: "@/nope"
      namespace_prefix: Acme
    - path: /srv/acme
      namespace_prefix: Acme\
    - namespace_prefix: Other
`)

	result := Validate(cfg)
	require.False(t, result.IsValid())

	codes := result.Codes()
	assert.Contains(t, codes, "missing_cache_dir")
	assert.Contains(t, codes, "invalid_module_reference")
	assert.Contains(t, codes, "missing_value")

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "duplicate_namespace_prefix", result.Warnings[0].Code)
	assert.Equal(t, "metadata.directories[1]", result.Warnings[0].Section)
}

func TestValidate_CacheNoneIgnoresDir(t *testing.T) {
	cfg := mustParse(t, "metadata:\n  cache: none\n  file_cache:\n    dir: \"\"\n")

	assert.True(t, Validate(cfg).IsValid())
}

func TestValidate_Namers(t *testing.T) {
	cfg := mustParse(t, `
mappings:
  avatar:
    upload_destination: /x
    namer:
      options: {property: slug}
  doc:
    upload_destination: /y
    directory_namer: "@app.dir_namer"
`)

	result := Validate(cfg)
	require.False(t, result.IsValid())

	d, ok := findError(result, "missing_namer_service")
	require.True(t, ok)
	assert.Equal(t, "mappings.avatar", d.Section)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "namer_service_prefix", result.Warnings[0].Code)
}

func TestValidate_DuplicateAndBadNames(t *testing.T) {
	cfg := Default()
	cfg.Mappings = Mappings{
		{Name: "avatar", UploadDestination: "/a"},
		{Name: "avatar", UploadDestination: "/b"},
		{Name: "my files", UploadDestination: "/c"},
	}

	result := Validate(cfg)
	codes := result.Codes()
	assert.Contains(t, codes, "duplicate_mapping")
	assert.Contains(t, codes, "invalid_mapping_name")
}
