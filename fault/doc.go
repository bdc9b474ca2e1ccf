// Package fault defines the failure model used by the rescue policies.
//
// A failure kind is declared once as a Tag with a fixed Class: fatal
// kinds always escape a remapping policy converted, ambient kinds are
// converted only when a handler explicitly claims them. Errors that do
// not carry a Tag classify as ambient, matching the behavior of
// undeclared runtime failures.
package fault
