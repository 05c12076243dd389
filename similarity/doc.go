// Package similarity holds the lexical and numeric building blocks used to decide
// whether two audience questions are the same question: text normalization,
// character shingles, 64-bit SimHash fingerprints, Jaccard and cosine measures,
// and a smoothed TF-IDF weighting for the lexical-only path.
//
// Every function is pure and safe for concurrent use.
package similarity
