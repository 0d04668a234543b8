// Package playback owns the player's state: the track list, the current
// index, the pause flag and the volume. Every playback decision is made
// here and pushed to a player.Interface.
//
// The state is single-owner: only the event loop calls into it.
package playback
