// Package debug holds debugging switches read from the environment and
// a logger for them.
//
//   - DTS_DEBUG_TOKENS prints the tokens of every parsed input
//   - DTS_DEBUG_PARSE logs parse results
//   - DTS_DEBUG_CODEC logs JSON decoding in the command line tools
//   - DTS_DEBUG_LSP logs language server requests
package debug
