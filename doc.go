// Package bestresponse builds best-response tables for one player of an
// n-player normal-form game.
//
// Player A faces n opponents, each choosing one of k strategies. A's payoff
// against a profile of opponent strategies is the sum of A's pairwise
// payoffs against each opponent. For every one of the k^n profiles the
// table records the strategy maximizing A's payoff, breaking ties in favor
// of the lowest strategy index.
package bestresponse
