package storageurl

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrProjectRefNotFound is returned when no recognized environment variable
// yields a project reference. This should never happen in a correctly
// configured deployment.
var ErrProjectRefNotFound = errors.New("no Supabase project ref found in environment")

// EnvLookup abstracts os.LookupEnv so resolution is testable without
// mutating the process environment.
type EnvLookup func(key string) (string, bool)

var (
	// Project URL: https://<ref>.supabase.co
	projectURLPattern = regexp.MustCompile(`^https://([a-z0-9-]+)\.supabase\.co`)

	// S3-compatible endpoint: https://<ref>.storage.supabase.co
	s3EndpointPattern = regexp.MustCompile(`^https://([a-z0-9-]+)\.storage\.supabase\.co`)

	// Pooler connection strings embed the project ref in the database
	// username as "postgres.<ref>". This is a Supabase convention, not a
	// general Postgres rule.
	pgUserPattern = regexp.MustCompile(`postgres\.([a-z0-9-]+):`)
)

// matcher pairs one environment variable with the pattern that extracts a
// project ref from its value. Matchers are tried in order; the first
// variable that is set and matches wins.
type matcher struct {
	envVar  string
	pattern *regexp.Regexp
}

var matchers = []matcher{
	{"SUPABASE_URL", projectURLPattern},
	{"NEXT_PUBLIC_SUPABASE_URL", projectURLPattern},
	{"S3_ENDPOINT", s3EndpointPattern},
	{"DATABASE_URI", pgUserPattern},
	{"POSTGRES_URL", pgUserPattern},
}

// PublicMediaURL returns the canonical public media URL for a project ref.
// No trailing slash.
func PublicMediaURL(ref string) string {
	return fmt.Sprintf("https://%s.supabase.co/storage/v1/object/public/media", ref)
}

// ResolveError reports a failed resolution along with which recognized
// variables were present. Variable names only, never values.
type ResolveError struct {
	Present []string
	Missing []string
}

func (e *ResolveError) Error() string {
	if len(e.Present) == 0 {
		return fmt.Sprintf("%v: none of %s are set", ErrProjectRefNotFound, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("%v: set but unrecognized: %s; unset: %s",
		ErrProjectRefNotFound, strings.Join(e.Present, ", "), strings.Join(e.Missing, ", "))
}

func (e *ResolveError) Unwrap() error {
	return ErrProjectRefNotFound
}

// Resolve derives the public storage base URL from the environment.
// Every heuristic resolves to the identical URL shape for a given ref, so
// the result is independent of which variable supplied it.
func Resolve(lookup EnvLookup) (string, error) {
	for _, m := range matchers {
		value, ok := lookup(m.envVar)
		if !ok || value == "" {
			continue
		}
		if sub := m.pattern.FindStringSubmatch(value); sub != nil {
			return PublicMediaURL(sub[1]), nil
		}
	}

	resolveErr := &ResolveError{}
	for _, m := range matchers {
		if value, ok := lookup(m.envVar); ok && value != "" {
			resolveErr.Present = append(resolveErr.Present, m.envVar)
		} else {
			resolveErr.Missing = append(resolveErr.Missing, m.envVar)
		}
	}
	return "", resolveErr
}

// ResolveEnv resolves against the process environment.
func ResolveEnv() (string, error) {
	return Resolve(os.LookupEnv)
}

// VarStatus reports one recognized variable's presence and whether its
// value matches the expected shape.
type VarStatus struct {
	Name    string
	Set     bool
	Matches bool
}

// Diagnose reports the status of every recognized variable, in priority
// order. Used by diagnostics output; values are never included.
func Diagnose(lookup EnvLookup) []VarStatus {
	statuses := make([]VarStatus, 0, len(matchers))
	for _, m := range matchers {
		value, ok := lookup(m.envVar)
		status := VarStatus{Name: m.envVar, Set: ok && value != ""}
		if status.Set {
			status.Matches = m.pattern.MatchString(value)
		}
		statuses = append(statuses, status)
	}
	return statuses
}
