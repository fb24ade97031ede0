// Package ffmpeg runs the ffprobe and ffmpeg binaries on behalf of
// [go.jacobcolvin.com/asciiview/playback].
//
// [Prober] reads a video's frame rate and [Extractor] writes every frame as
// a numbered PNG file. Both look up their binary on PATH when first used and
// run it with [exec.CommandContext], so canceling the context kills the
// process.
package ffmpeg
