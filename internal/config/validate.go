package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"uploadwire/internal/diagnostic"
	"uploadwire/internal/match"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report YAML key names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return strings.ToLower(f.Name)
		}

		if name == "" {
			return f.Name
		}

		return name
	})

	return v
}

// Validate checks a parsed configuration. Structural rules come from the
// validate struct tags; cross-field rules are checked here. It does not
// touch the filesystem or the registry.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	validateStruct(res, cfg)
	validateDriver(res, cfg)
	validateMetadata(res, &cfg.Metadata)
	validateMappings(res, cfg.Mappings)

	return res
}

func validateStruct(res *diagnostic.Diagnostics, cfg *Config) {
	err := validate.Struct(cfg)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.AddError("invalid_config", err.Error(), "", "")
		return
	}

	for _, fe := range verrs {
		section, key := splitNamespace(fe.Namespace())
		res.AddError(codeFor(fe), messageFor(fe), section, key)
	}
}

// splitNamespace turns "Config.mappings[0].upload_destination" into
// ("mappings[0]", "upload_destination").
func splitNamespace(ns string) (section, key string) {
	_, ns, _ = strings.Cut(ns, ".")

	i := strings.LastIndexByte(ns, '.')
	if i < 0 {
		return "", ns
	}

	return ns[:i], ns[i+1:]
}

func codeFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing_value"
	default:
		return "invalid_" + fe.Tag()
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}

func validateDriver(res *diagnostic.Diagnostics, cfg *Config) {
	if cfg.DBDriver == "" || IsKnownDriver(cfg.DBDriver) {
		return
	}

	res.AddError("unknown_driver",
		fmt.Sprintf("unsupported db_driver %q, expected one of: %s", cfg.DBDriver, strings.Join(KnownDrivers, ", ")),
		"", "db_driver", match.Suggest(cfg.DBDriver, KnownDrivers)...)
}

func validateMetadata(res *diagnostic.Diagnostics, md *Metadata) {
	if md.Cache.Kind == CacheFile && strings.TrimSpace(md.FileCache.Dir) == "" {
		res.AddError("missing_cache_dir", "metadata.file_cache.dir is required when cache is \"file\"", "metadata", "file_cache.dir")
	}

	if md.Cache.Kind == CacheExternal && md.Cache.Ref == "" {
		res.AddError("missing_cache_service", "metadata.cache names an empty service", "metadata", "cache")
	}

	seen := map[string]int{}

	for i, d := range md.Directories {
		section := fmt.Sprintf("metadata.directories[%d]", i)

		if d.Path == "@" || strings.HasPrefix(d.Path, "@/") {
			res.AddError("invalid_module_reference", fmt.Sprintf("path %q names no module", d.Path), section, "path")
		}

		prefix := strings.TrimRight(d.NamespacePrefix, `\/`)
		if prev, dup := seen[prefix]; dup && prefix != "" {
			res.AddWarning("duplicate_namespace_prefix",
				fmt.Sprintf("namespace prefix %q already configured by directories[%d]; the later entry wins", prefix, prev),
				section, "namespace_prefix")
		}

		seen[prefix] = i
	}
}

func validateMappings(res *diagnostic.Diagnostics, ms Mappings) {
	seen := map[string]struct{}{}

	for i := range ms {
		m := &ms[i]
		section := "mappings." + m.Name

		if _, dup := seen[m.Name]; dup {
			res.AddError("duplicate_mapping", fmt.Sprintf("mapping %q declared twice", m.Name), "mappings", m.Name)
		}

		seen[m.Name] = struct{}{}

		if strings.IndexFunc(m.Name, unicode.IsSpace) >= 0 {
			res.AddError("invalid_mapping_name", fmt.Sprintf("mapping name %q must not contain whitespace", m.Name), "mappings", m.Name)
		}

		if m.DBDriver != "" && !IsKnownDriver(m.DBDriver) {
			res.AddWarning("custom_driver",
				fmt.Sprintf("driver %q has no built-in listener templates; they must be registered by the host", m.DBDriver),
				section, "db_driver")
		}

		validateNamer(res, section, "namer", m.Namer)
		validateNamer(res, section, "directory_namer", m.DirectoryNamer)
	}
}

func validateNamer(res *diagnostic.Diagnostics, section, key string, n *Namer) {
	if n == nil {
		return
	}

	if n.Service == "" && len(n.Options) > 0 {
		res.AddError("missing_namer_service", key+" has options but no service", section, key)
	}

	if strings.HasPrefix(n.Service, "@") {
		res.AddWarning("namer_service_prefix", key+" service ids are written without '@'", section, key)
	}
}
