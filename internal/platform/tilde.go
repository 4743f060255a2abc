package platform

import (
	"os/user"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

// ExpandTilde resolves a leading "~", "~/...", or "~user[/...]" against
// the home directory database. It returns the input unchanged if it
// does not begin with a tilde-home expression.
func ExpandTilde(pattern string) (string, bool, error) {
	if pattern == "" || pattern[0] != '~' {
		return pattern, false, nil
	}

	rest := pattern[1:]
	name, tail, hasSlash := cutFirstSlash(rest)

	var home string
	var err error
	if name == "" {
		home, err = homedir.Dir()
	} else {
		home, err = homeForUser(name)
	}
	if err != nil {
		return "", false, err
	}

	if !hasSlash {
		return home, true, nil
	}
	return home + "/" + tail, true, nil
}

func cutFirstSlash(s string) (head, tail string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

func homeForUser(name string) (string, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(u.HomeDir, "/"), nil
}
