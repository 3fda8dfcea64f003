// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

// Package websocket provides real-time event streaming to connected clients.
//
// The Hub fans domain events out to every connected websocket client.
// Clients register through the HTTP upgrade handler, and each connection
// gets its own buffered send channel so a slow reader never blocks the
// broadcast loop. Clients that cannot keep up are evicted rather than
// allowed to stall delivery to everyone else.
//
// The hub is context-driven: RunWithContext processes registrations,
// unregistrations, and broadcasts until the context is canceled, at
// which point all client connections are closed gracefully.
//
// BroadcastEvent implements the store's event sink contract, so every
// state change recorded by the store is pushed to subscribers as it
// happens.
package websocket
