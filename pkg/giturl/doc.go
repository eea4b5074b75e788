// Package giturl parses the strings git accepts as clone URLs.
//
// Besides scheme URLs (https://, ssh://, git://, file://) it understands the
// scp form `user@host:path`, the short `git:host/path` form, bare relative
// or absolute filesystem paths and Windows drive paths. Inputs are read with
// a small left-to-right grammar and then classified into a Hint, which
// decides how the result is normalized, validated and rendered.
//
//	u, err := giturl.Parse("git@github.com:owner/repo.git")
//	if err != nil {
//		return err
//	}
//	host, _ := u.Host() // "github.com"
//	u.Path()            // "owner/repo.git"
//	u.URLString()       // "ssh://git@github.com/owner/repo.git"
//
// Provider specific path layouts live in the provider subpackage.
package giturl
