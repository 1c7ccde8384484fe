// Package tts turns practice text into speech audio.
//
// A Synthesizer generates audio bytes for a text and voice configuration.
// The MiniMax implementation talks to the MiniMax t2a_v2 endpoint and
// decodes its hex-encoded audio payload. A Cache keyed by the request
// fingerprint avoids re-synthesizing identical requests.
package tts
