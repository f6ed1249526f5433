package types

import "fmt"

// Severity ranks how a reported issue should be treated.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityOff     Severity = "off"
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityOff:
		return "OFF"
	}
	return "UNKNOWN"
}

// Valid reports whether s is one of the recognized severity levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityOff:
		return true
	}
	return false
}

// UnmarshalYAML validates severity strings while decoding configuration.
func (s *Severity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	sev := Severity(raw)
	if !sev.Valid() {
		return fmt.Errorf("unknown severity %q (want error, warning or off)", raw)
	}
	*s = sev
	return nil
}
