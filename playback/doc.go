// Package playback renders images and videos to a terminal.
//
// A [Player] classifies its input by file extension. Still images take a
// single decode, render, clear and print cycle. Videos are probed for their
// frame rate, extracted to numbered PNG frames in a temporary directory, and
// each frame is then shown like a still image followed by a fixed 1/fps
// pause. The temporary directory is removed on every exit path.
//
// Process invocation is kept behind the [FrameRateProbe] and
// [FrameExtractor] interfaces; see package
// [go.jacobcolvin.com/asciiview/ffmpeg] for the implementations backed by
// ffprobe and ffmpeg.
package playback
