// Package deps checks that the external executables and data files the
// annotation pipeline shells out to are present on this host.
//
// A Table lists what to look for; each entry names the Strategy used to
// resolve it. Resolution is behind the Resolver interface so tests (and
// callers with unusual hosts) can swap in their own lookup.
package deps
