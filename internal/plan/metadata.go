package plan

import (
	"fmt"
	"maps"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"uploadwire/internal/common"
	"uploadwire/internal/config"
	"uploadwire/internal/match"
	"uploadwire/internal/registry"
	"uploadwire/internal/services"
)

const cacheDirPerm = 0o777

// resolveDirectories builds the namespace prefix to directory table handed
// to the metadata file locator. Explicit entries win over auto-detected
// ones for the same prefix.
func (r *Resolver) resolveDirectories(p *Plan) error {
	dirs := make(map[string]string)
	detected := make(map[string]bool)

	if p.Config.Metadata.AutoDetection {
		for _, m := range r.modules.All() {
			dir := m.MetadataDir()

			ok, err := afero.DirExists(r.fs, dir)
			if err != nil {
				r.logger.Debug("metadata directory not readable", zap.String("module", m.Name), zap.Error(err))
				continue
			}

			if !ok {
				continue
			}

			dirs[m.Namespace] = dir
			detected[m.Namespace] = true

			r.logger.Debug("metadata directory detected", zap.String("module", m.Name), zap.String("dir", dir))
		}
	}

	for _, d := range p.Config.Metadata.Directories {
		dir, err := r.expandModulePath(strings.TrimRight(common.ToSlash(d.Path), "/"))
		if err != nil {
			return err
		}

		prefix := common.TrimSeparators(d.NamespacePrefix)
		if detected[prefix] {
			p.Diagnostics.AddWarning("metadata_override",
				fmt.Sprintf("auto-detected directory %q replaced by %q", dirs[prefix], dir),
				"metadata.directories", prefix)
		}

		dirs[prefix] = common.TrimSeparators(dir)
	}

	p.Directories = dirs
	p.replaceArgument(services.IDMetadataFileLocator, 0, maps.Clone(dirs))

	return nil
}

// expandModulePath rewrites "@Module/rest" to "<module dir>/rest".
func (r *Resolver) expandModulePath(path string) (string, error) {
	name, rest, ok := common.SplitReference(path)
	if !ok {
		return path, nil
	}

	mod, found := r.modules.Lookup(name)
	if !found {
		available := r.modules.Names()

		return "", &ConfigError{
			Err:         ErrUnregisteredModule,
			Subject:     name,
			Available:   available,
			Suggestions: match.Suggest(name, available),
		}
	}

	return common.TrimSeparators(common.ToSlash(mod.Dir)) + rest, nil
}

func (r *Resolver) resolveCache(p *Plan) error {
	sel := p.Config.Metadata.Cache
	p.Cache = CacheStrategy{Kind: sel.Kind}

	switch sel.Kind {
	case config.CacheNone:
		p.removeAlias(services.IDMetadataCache)
	case config.CacheFile:
		p.Cache.Dir = p.Config.Metadata.FileCache.Dir
		p.replaceArgument(services.IDMetadataFileCache, 0, p.Cache.Dir)
	case config.CacheExternal:
		p.Cache.Service = sel.Ref
		p.alias(services.IDMetadataCache, registry.Alias{Target: sel.Ref, Public: false})
	default:
		return fmt.Errorf("metadata cache: unsupported kind %s", sel.Kind)
	}

	return nil
}

// ensureCacheDir creates the file cache directory if it is missing.
func (r *Resolver) ensureCacheDir(p *Plan) error {
	if p.Cache.Kind != config.CacheFile {
		return nil
	}

	dir, err := r.reader.ResolveString(p.Cache.Dir)
	if err != nil {
		return &ConfigError{Err: ErrCacheDirectory, Subject: p.Cache.Dir, Cause: err}
	}

	p.Cache.ResolvedDir = dir

	exists, err := afero.Exists(r.fs, dir)
	if err != nil {
		return &ConfigError{Err: ErrCacheDirectory, Subject: dir, Cause: err}
	}

	if exists {
		return nil
	}

	if err := r.fs.MkdirAll(dir, cacheDirPerm); err != nil {
		return &ConfigError{Err: ErrCacheDirectory, Subject: dir, Cause: err}
	}

	p.Cache.Created = true
	r.logger.Info("metadata cache directory created", zap.String("dir", dir))

	return nil
}
