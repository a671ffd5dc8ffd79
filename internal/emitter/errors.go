package emitter

import "fmt"

// MissingSettingError reports a mandatory setting absent from the parsed
// settings map. A partial link plan is worse than none, so any miss aborts
// the whole run.
type MissingSettingError struct {
	Name string
}

func (e *MissingSettingError) Error() string {
	return fmt.Sprintf("required setting %q missing from settings file", e.Name)
}
