package models

// Task describes one derivation endpoint: its route doubles as the auth
// identity (each path has its own API key), and the character budget is
// per-task because translation runs on a tighter limit.
type Task struct {
	Name           string
	Path           string
	RequiredFields []string
	MaxChars       int
	ErrorCode      string
	SuccessMessage string
}
