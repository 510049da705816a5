// Package diagnostic collects validation findings from settings and catalog
// checks so callers can surface them as warnings instead of failing on the
// first problem.
package diagnostic
