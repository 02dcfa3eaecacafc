// Package format enumerates the output formats for syntax trees: an
// indented kind tree for reading, JSON for the wire and YAML.
package format
