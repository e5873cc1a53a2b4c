// Package properties turns configuration file content into flat key/value
// mappings and selects the right parser for a file by its name.
//
// Three formats are supported out of the box:
//   - Java-style .properties syntax ([PropertySyntax], the default)
//   - YAML ([YAML])
//   - JSON ([JSON])
//
// Nested YAML/JSON structures are flattened to dotted-path keys
// ("server.http.port"); sequences become comma-joined strings, the list
// representation understood by the typed accessors of the source package.
// A [Selector] maps file name suffixes to providers and can be extended
// with new formats without touching this package.
package properties
