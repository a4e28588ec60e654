package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"uploadwire/internal/registry"
)

const sampleConfig = `
db_driver: orm
twig: false
metadata:
  cache: file
  directories:
    - path: "@AcmeBundle/uploads"
      namespace_prefix: Acme
mappings:
  avatar:
    upload_destination: /var/uploads/avatars
    namer: uploader.namer_uniqid
    delete_on_remove: false
  doc:
    upload_destination: /var/uploads/docs
    db_driver: mongodb
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestResolveCmd(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "uploader.yaml", sampleConfig)
	cacheDir := filepath.Join(dir, "cache")
	acme := filepath.Join(dir, "acme")

	out, err := run(t, "resolve",
		"--config", cfgPath,
		"--cache-dir", cacheDir,
		"--module", "AcmeBundle="+acme,
	)
	require.NoError(t, err, out)

	var snap registry.Snapshot
	require.NoError(t, yaml.Unmarshal([]byte(out), &snap))

	assert.Contains(t, snap.Services, "uploader.listener.upload.avatar")
	assert.Contains(t, snap.Services, "uploader.listener.clean.avatar")
	assert.NotContains(t, snap.Services, "uploader.listener.remove.avatar")
	assert.Contains(t, snap.Services, "uploader.listener.remove.doc")
	assert.Contains(t, snap.Services, "uploader.namer_uniqid.avatar")
	assert.Equal(t, "uploader.storage.file_system", snap.Aliases["uploader.storage"].Target)
	assert.Equal(t, "_name", snap.Parameters["uploader.default_filename_attribute_suffix"])
	assert.Contains(t, out, "@uploader.adapter.mongodb")

	info, err := os.Stat(filepath.Join(cacheDir, "uploader"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolveCmd_Dump(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "uploader.yaml", "metadata: {cache: none}\nmappings:\n  a: {upload_destination: /a}\n")

	out, err := run(t, "resolve", "--config", cfgPath, "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "(*plan.Plan)")
	assert.Contains(t, out, "uploader.listener.upload.a")
}

func TestResolveCmd_UnregisteredModule(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "uploader.yaml", sampleConfig)

	_, err := run(t, "resolve", "--config", cfgPath, "--cache-dir", dir, "--module", "AcmeBundel="+dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"AcmeBundle"`)
}

func TestResolveCmd_CacheDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "uploader.yaml", "mappings:\n  a: {upload_destination: /a}\n")
	t.Setenv("UPLOADWIRE_CACHE_DIR", filepath.Join(dir, "envcache"))

	_, err := run(t, "resolve", "--config", cfgPath)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "envcache", "uploader"))
	assert.NoError(t, err)
}

func TestResolveCmd_BadParam(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "uploader.yaml", "")

	_, err := run(t, "resolve", "--config", cfgPath, "--param", "novalue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected name=value")
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		cfgPath := writeFile(t, dir, "ok.yaml", sampleConfig)

		out, err := run(t, "check", "--config", cfgPath)
		require.NoError(t, err)
		assert.Contains(t, out, "ok (2 mapping(s)")
	})

	t.Run("invalid", func(t *testing.T) {
		cfgPath := writeFile(t, dir, "bad.yaml", "db_driver: mongo\nmappings:\n  a: {}\n")

		out, err := run(t, "check", "--config", cfgPath)
		require.Error(t, err)
		assert.Contains(t, out, "unknown_driver")
		assert.Contains(t, out, "missing_value")
	})
}

func TestCheckCmd_Write(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "in.yaml", "mappings:\n  a: {upload_destination: /a, db_driver: ORM}\n")
	outPath := filepath.Join(dir, "out.yaml")

	_, err := run(t, "check", "--config", cfgPath, "--write", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "db_driver: orm")
	assert.Contains(t, string(data), "uri_prefix: /uploads")
}

func TestTemplatesCmd(t *testing.T) {
	out, err := run(t, "templates", "--storage", "gaufrette", "--twig")
	require.NoError(t, err)

	assert.Contains(t, out, "gaufrette:\n  uploader.storage.gaufrette\n")
	assert.Contains(t, out, "twig:\n  uploader.twig.extension\n")
	assert.Contains(t, out, "  uploader.listener.upload.propel\n")
	assert.NotContains(t, out, "flysystem")
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	_, err := run(t, "templates", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
