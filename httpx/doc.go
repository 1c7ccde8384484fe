// Package httpx is a thin HTTP client used to reach the speech-synthesis
// and translation backends: base URL, default headers, timeout, JSON
// bodies, and optional retry with exponential backoff.
package httpx
