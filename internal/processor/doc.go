// Package processor contains the core logic for processing a pronunciation
// query. It sequences the two stages of a run: resolving the audio token
// from the dictionary entry page, then downloading the referenced clip into
// the output directory.
package processor
