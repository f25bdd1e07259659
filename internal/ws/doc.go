// Package ws implements the WebSocket hub that streams computed inlet
// results to UI clients. Every connected client receives the current results
// immediately on connect and then on every broadcast tick.
package ws
