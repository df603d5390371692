// Package main provides the objid command line tool.
// It prints cryptographically secure, URL-friendly random ids, drawn either
// from the default alphabet A-Za-z0-9_- or from a custom alphabet.
// Defaults can be read from etc/main.toml and overridden by OBJID_* environment
// variables and flags. The generator itself lives in pkg/objid.
package main
