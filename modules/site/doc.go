// Package site serves the Vivir con Diabetes pages.
//
// Service serves enhanced pages at / and /{page} and static assets under
// /static/. Router mounts it next to the contact service. Build exports
// the same pages to a directory for static hosting.
package site
