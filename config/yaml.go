package config

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/tessellated-io/nolus-wallet/log"
)

// WriteYamlWithComments writes a struct as YAML, each field preceded by its `comment` tag. Existing files are kept.
func WriteYamlWithComments(config interface{}, header string, filename string, logger *log.Logger) error {
	fileData, err := commentedYaml(config, header)
	if err != nil {
		return err
	}

	return SafeWrite(filename, fileData, logger)
}

// commentedYaml renders one field at a time in declaration order, so comments never land on the wrong key.
func commentedYaml(config interface{}, header string) ([]byte, error) {
	value := reflect.Indirect(reflect.ValueOf(config))
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected a struct, got %s", value.Kind())
	}

	var result strings.Builder
	if header != "" {
		result.WriteString("# " + header + "\n")
	}

	structType := value.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		key := strings.Split(field.Tag.Get("yaml"), ",")[0]
		if key == "" || key == "-" || !field.IsExported() {
			continue
		}

		rendered, err := yaml.Marshal(yaml.MapSlice{{Key: key, Value: value.Field(i).Interface()}})
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", key, err)
		}

		if comment := field.Tag.Get("comment"); comment != "" {
			result.WriteString("\n# " + comment + "\n")
		}
		result.Write(rendered)
	}

	return []byte(result.String()), nil
}
