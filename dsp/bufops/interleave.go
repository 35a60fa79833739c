package bufops

// Interleave writes planar channels into out frame by frame:
// out[s*len(channels)+c] = channels[c][s].
//
// The first channel's length governs the frame count, further limited to the
// number of whole frames that fit in out. All channels must be at least as
// long as the first one; a shorter channel panics with an index error.
func Interleave(channels [][]float32, out []float32) {
	numChannels := len(channels)
	if numChannels == 0 {
		return
	}

	frames := min(len(channels[0]), len(out)/numChannels)
	for s := range frames {
		frame := out[s*numChannels : (s+1)*numChannels]
		for c, ch := range channels {
			frame[c] = ch[s]
		}
	}
}

// Deinterleave splits an interleaved buffer into planar channels. The frame
// count is len(in) / len(channels); a trailing partial frame is dropped. Frames
// past the shortest destination channel are not written.
func Deinterleave(in []float32, channels [][]float32) {
	numChannels := len(channels)
	if numChannels == 0 {
		return
	}

	frames := len(in) / numChannels
	for _, ch := range channels {
		frames = min(frames, len(ch))
	}

	for s := range frames {
		frame := in[s*numChannels : (s+1)*numChannels]
		for c, ch := range channels {
			ch[s] = frame[c]
		}
	}
}
