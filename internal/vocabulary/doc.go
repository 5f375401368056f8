// Package vocabulary resolves a word or phrase to the opaque audio token
// embedded in its vocabulary.com dictionary entry page. The token maps to a
// pronunciation clip on the audio host and is extracted by scanning the raw
// page markup rather than parsing the document tree.
package vocabulary
