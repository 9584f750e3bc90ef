package permission

import "fmt"

// InvalidPermissionError reports a permissions blob referencing a
// section or code that is not in the catalog.
type InvalidPermissionError struct {
	Section string
	Code    string
}

func (e *InvalidPermissionError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("unknown permission section %q", e.Section)
	}
	return fmt.Sprintf("unknown permission %q in section %q", e.Code, e.Section)
}
