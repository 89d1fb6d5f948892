// Package lustre lexes and parses Lustre source into lossless syntax
// trees. Parsing never gives up on malformed input: errors become error
// nodes plus diagnostics, and the tree always reproduces the input byte
// for byte.
package lustre
