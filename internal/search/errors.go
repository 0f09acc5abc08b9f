package search

import "fmt"

// ErrorKind tags the four ways a classified term can fail to resolve
type ErrorKind int

const (
	KindInvalidID64 ErrorKind = iota
	KindInvalidNickname
	KindInvalidProfileURL
	KindInvalidPermalink
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidID64:
		return "invalid id64"
	case KindInvalidNickname:
		return "invalid nickname"
	case KindInvalidProfileURL:
		return "invalid profile URL"
	case KindInvalidPermalink:
		return "invalid permalink"
	}
	return "invalid input"
}

// LookupError reports that a classified term did not resolve to any player.
// Every variant carries the offending input in its message.
type LookupError struct {
	Kind  ErrorKind
	Input string
}

func (e *LookupError) Error() string {
	switch e.Kind {
	case KindInvalidID64:
		return fmt.Sprintf("no player found for id64 %q", e.Input)
	case KindInvalidNickname:
		return fmt.Sprintf("no player found for nickname %q", e.Input)
	case KindInvalidProfileURL:
		return fmt.Sprintf("no player found for profile URL %q", e.Input)
	case KindInvalidPermalink:
		return fmt.Sprintf("no player found for permalink %q", e.Input)
	}
	return fmt.Sprintf("no player found for %q", e.Input)
}

// lookupError builds the taxonomy error matching the query's resolution path
func (q Query) lookupError() *LookupError {
	var kind ErrorKind
	switch q.Kind {
	case KindID64:
		kind = KindInvalidID64
	case KindProfileURL:
		kind = KindInvalidProfileURL
	case KindPermalink:
		kind = KindInvalidPermalink
	default:
		kind = KindInvalidNickname
	}
	return &LookupError{Kind: kind, Input: q.Term}
}
