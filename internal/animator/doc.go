// Package animator drives frame-by-frame animation of 2D simulations.
//
// An [Animator] calls the user's update function once per frame and
// redraws its [figure.Figure]. It either shows the animation live in the
// terminal or renders a fixed number of frames to a video file.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	Q     - Quit
//
// # Saving
//
// Saving requires Options.Frames. Frames are encoded as GIF with the
// standard library encoder, or piped to ffmpeg for MP4.
package animator
