// Package jsondoc edits JSON documents in place. Reads use gjson paths and
// writes splice values with sjson, so keys keep their order and untouched
// values keep their exact bytes. Bytes re-indents the document with pretty.
package jsondoc
