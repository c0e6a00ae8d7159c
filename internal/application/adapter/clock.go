package adapter

import "time"

// Clock supplies the current time. "Today" for date validation is derived from it.
type Clock interface {
	Now() time.Time
}
