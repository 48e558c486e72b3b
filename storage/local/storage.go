// Package localstore is the client's durable storage, the equivalent of the
// browser's localStorage. Only a handful of string keys ever live here.
package localstore

// Storage keys.
const (
	KeyToken           = "token"
	KeyRole            = "role"
	KeyEnrolledCourses = "enrolledCourseIds"
)

// Storage persists small string values across app restarts. Mutations are
// single synchronous writes, last-writer-wins; there is no locking across
// processes.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, val string) error
	Delete(key string) error
}
