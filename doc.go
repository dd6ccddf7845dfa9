// Package main is the entry point of NavPortal, the company link directory.
// It serves a REST api over groups, subgroups and links. Accounts register
// with an email address of the company domain and verify it before logging in.
// A single admin account manages the catalog.
package main
