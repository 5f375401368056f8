// Package audio downloads pronunciation clips from the vocabulary.com audio
// host and derives filesystem-safe filenames for them from the original
// query.
package audio
