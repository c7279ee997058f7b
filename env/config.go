// Package env reads .env files into a source for go-simpler.org/env.
package env

import (
	"os"
	"strings"

	"jcs.mleku.dev/chk"
)

// Env is a key/value map of environment variables. It implements the
// env.Source interface of go-simpler.org/env.
type Env map[string]string

// GetEnv reads a file of KEY=value lines in shell environment format. Blank
// lines, lines starting with # and lines with no = are skipped, and a value
// in matching quotes is unquoted.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	env = make(Env)
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	for _, line := range strings.Split(string(s), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if len(v) > 1 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
			v = v[1 : len(v)-1]
		}
		env[strings.TrimSpace(k)] = v
	}
	return
}

// LookupEnv returns the value of key, for go-simpler.org/env.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	value, ok = env[key]
	return
}
