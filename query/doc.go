// Package query turns free-text search input into sub-queries.
//
// A Processor classifies the phrase type of the input, detects questions,
// keeps the content-bearing terms and, when splitting is requested, groups
// those terms into semantically coherent sub-queries by word-embedding
// similarity.
package query
