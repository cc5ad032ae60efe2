package ports

import "time"

// Clock supplies the wall-clock time deadlines are checked against.
type Clock interface {
	Now() time.Time
}
