// Package integration holds repository-wide checks run with the integration
// build tag.
package integration
