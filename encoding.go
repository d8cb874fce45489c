package fixedstr

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText returns a copy of the content. It makes a String encode as a
// plain string with encoding/json and other text-based encoders.
func (s String) MarshalText() ([]byte, error) {
	return append([]byte{}, s.Bytes()...), nil
}

// UnmarshalText assigns text to the string, truncating it to fit. The storage
// must already exist, as made by [Make] or [Wrap].
func (s *String) UnmarshalText(text []byte) error {
	if s.buf == nil {
		return fmt.Errorf("%w: cannot decode into a zero String", ErrNoStorage)
	}
	if text == nil {
		s.Clear()
		return nil
	}
	s.AssignBytes(text)
	return nil
}

// MarshalYAML encodes the string as a YAML scalar.
func (s String) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML decodes a YAML scalar into the string, truncating it to fit.
func (s *String) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: yaml node at line %d is not a scalar", ErrArgumentType, value.Line)
	}
	if s.buf == nil {
		return fmt.Errorf("%w: cannot decode into a zero String", ErrNoStorage)
	}
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	s.Assign(text)
	return nil
}
