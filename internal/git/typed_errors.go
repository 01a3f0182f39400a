package git

import "fmt"

// NotRepositoryError reports that no git repository encloses Path.
type NotRepositoryError struct {
	Path string
	Err  error
}

func (e *NotRepositoryError) Error() string {
	return fmt.Sprintf("no git repository at or above %s: %v", e.Path, e.Err)
}
func (e *NotRepositoryError) Unwrap() error { return e.Err }
