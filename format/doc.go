// Package format names the output formats a document can be encoded to.
//
// OBO text is the native format; YAML and JSON are structured exports of
// the parsed document.
//
//	f, err := format.ParseFormat("yaml")
//	err = encode.Encode(doc, w, encode.EncodeFormat(f))
package format
