// Package server is the Simplistic demo/dev server. It renders demo trees
// to HTML over HTTP and keeps each connected browser in sync over a
// WebSocket: client events dispatch to registered handlers, the reactive
// layer mutates the live tree, and the re-rendered fragment is pushed
// back.
//
// Every response carries no-store cache headers so demo edits are always
// picked up on reload.
package server
