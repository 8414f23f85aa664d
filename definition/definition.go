// Package definition loads declarative menu definitions from yaml or toml
// files and builds runnable menus from them.
package definition

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/pick/errors"
	"github.com/grovetools/pick/logging"
	"github.com/grovetools/pick/schema"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var log = logging.NewLogger("definition")

// Load reads, parses and validates a menu definition file. The format is
// chosen by file extension: .yml/.yaml or .toml.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.DefinitionNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDefinitionInvalid, "failed to read definition file").
			WithDetail("path", path)
	}

	def, err := Parse(data, filepath.Ext(path))
	if err != nil {
		if pickErr, ok := err.(*errors.PickError); ok {
			return nil, pickErr.WithDetail("path", path)
		}
		return nil, err
	}

	log.WithField("path", path).WithField("title", def.Title).Debug("Loaded menu definition")
	return def, nil
}

// Parse decodes and validates definition data. ext selects the format and
// includes the leading dot, as returned by filepath.Ext.
func Parse(data []byte, ext string) (*Definition, error) {
	var def Definition

	switch strings.ToLower(ext) {
	case ".yml", ".yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDefinitionInvalid, "failed to parse yaml definition")
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDefinitionInvalid, "failed to parse toml definition")
		}
	default:
		return nil, errors.New(errors.ErrCodeDefinitionInvalid,
			fmt.Sprintf("unsupported definition format %q", ext))
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Validate checks the definition against the embedded schema and the
// structural rules the schema cannot express.
func (d *Definition) Validate() error {
	validator, err := schema.NewDefinitionValidator()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to load definition schema")
	}
	if err := validator.Validate(d); err != nil {
		return errors.DefinitionValidation(err)
	}

	return validateItems(d.Items, "items")
}

func validateItems(items []Item, prefix string) error {
	for i := range items {
		at := fmt.Sprintf("%s[%d]", prefix, i)
		if err := items[i].validate(at); err != nil {
			return err
		}
	}
	return nil
}

func (it *Item) validate(at string) error {
	kinds := 0
	if it.Option != "" {
		kinds++
	}
	if it.Folder != "" {
		kinds++
	}
	if it.Separator {
		kinds++
	}
	if kinds != 1 {
		return errors.New(errors.ErrCodeDefinitionValidation,
			fmt.Sprintf("%s must set exactly one of option, folder or separator", at))
	}

	switch {
	case it.Option != "":
		if len(it.Items) > 0 {
			return errors.New(errors.ErrCodeDefinitionValidation,
				fmt.Sprintf("%s: items only applies to folders", at))
		}
	case it.Folder != "":
		if it.Run != "" {
			return errors.New(errors.ErrCodeDefinitionValidation,
				fmt.Sprintf("%s: run only applies to options", at))
		}
		return validateItems(it.Items, at+".items")
	case it.Separator:
		if it.Run != "" || len(it.Items) > 0 {
			return errors.New(errors.ErrCodeDefinitionValidation,
				fmt.Sprintf("%s: separators take no other fields", at))
		}
	}
	return nil
}
