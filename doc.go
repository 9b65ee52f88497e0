// Package util contains small, dependency-light helpers.
//
//   - value models dynamically typed values and converts between them.
//   - lang compares dynamic values and adapts string helpers to them.
//   - strutil truncates text on user-perceived character boundaries.
//   - hcl exposes the helpers as functions in HCL expressions.
//
// Packages inside MUST NOT keep state between calls. They MAY import
// standard library packages and third-party packages.
package util
