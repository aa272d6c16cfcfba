// Package config loads the optional YAML options file of the deriv command.
//
// Example:
//
//	import:
//	  column: 1
//	  delimiter: ";"
//	  quote: "'"
//	  skip_lines: 1
//	stride: 2
//	format: g
//	precision: -1
//
// ${VAR} references are expanded from the environment before decoding.
package config
