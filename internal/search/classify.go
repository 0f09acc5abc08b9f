package search

import (
	"regexp"
	"strings"
)

// QueryKind categorizes a raw search term by its shape
type QueryKind int

const (
	KindID64 QueryKind = iota
	KindProfileURL
	KindPermalink
	KindNickname
)

func (k QueryKind) String() string {
	switch k {
	case KindID64:
		return "id64"
	case KindProfileURL:
		return "profile URL"
	case KindPermalink:
		return "permalink"
	case KindNickname:
		return "nickname"
	}
	return "unknown"
}

// Query is a classified search term ready for resolution
type Query struct {
	Term string    // the raw input
	Kind QueryKind // resolution path to take
	Arg  string    // argument for the remote call: the term itself, a vanity slug or a permalink id
}

// communityDomain marks profile and permalink URLs we know how to cut apart
const communityDomain = "steamcommunity.com"

var (
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	// scheme-optional, www-optional, dotted host, optional path, with any
	// query or fragment tail ignored
	urlRe = regexp.MustCompile(`^(?:https?://)?(?:www\.)?((?:[A-Za-z0-9-]+\.)+[A-Za-z0-9-]+)(/[^?#]*)?(?:[?#].*)?$`)
)

// Classify categorizes a raw search term. ok is false when the term yields
// nothing to resolve: an empty string, or something URL-shaped that is not a
// community id/profiles link. Such terms complete silently without events.
func Classify(term string) (Query, bool) {
	if term == "" {
		return Query{}, false
	}

	if digitsRe.MatchString(term) {
		return Query{Term: term, Kind: KindID64, Arg: term}, true
	}

	if m := urlRe.FindStringSubmatch(term); m != nil {
		host, path := m[1], m[2]
		if !strings.Contains(strings.ToLower(host), communityDomain) {
			return Query{}, false
		}

		segments := splitSegments(path)
		if len(segments) == 0 {
			return Query{}, false
		}

		// The slug may be missing ("…/id/"); resolution then fails remotely
		var arg string
		if len(segments) > 1 {
			arg = segments[1]
		}

		switch segments[0] {
		case "id":
			return Query{Term: term, Kind: KindProfileURL, Arg: arg}, true
		case "profiles":
			return Query{Term: term, Kind: KindPermalink, Arg: arg}, true
		}
		return Query{}, false
	}

	return Query{Term: term, Kind: KindNickname, Arg: term}, true
}

// splitSegments splits a URL path into its non-empty segments
func splitSegments(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
