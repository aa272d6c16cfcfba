// Package delimited provides a streaming reader for delimiter-separated text
// tables whose delimiter and quote character are both configurable.
//
// encoding/csv fixes the quote character to '"', so tables that quote with
// another byte (for example '\'') cannot be read with it.
package delimited
