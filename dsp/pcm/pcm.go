package pcm

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-audiobuf/dsp/bufops"
	"github.com/go-audio/audio"
)

var (
	// ErrNilBuffer is returned when a nil buffer or format is passed in.
	ErrNilBuffer = errors.New("pcm: nil buffer")

	// ErrInvalidBitDepth is returned for integer buffers that are not 16-bit.
	ErrInvalidBitDepth = errors.New("pcm: unsupported bit depth")

	// ErrChannelMismatch is returned when the channel count of a format and a
	// planar slice set disagree.
	ErrChannelMismatch = errors.New("pcm: channel count mismatch")
)

const chunk = 256

// FromIntBuffer converts the 16-bit samples of src into dst using the
// int16 scaling of bufops.Int16ToFloat32. It returns the number of samples
// written, min(len(src.Data), len(dst)).
//
// A SourceBitDepth of 0 is treated as 16.
func FromIntBuffer(src *audio.IntBuffer, dst []float32) (int, error) {
	if src == nil {
		return 0, ErrNilBuffer
	}
	if src.SourceBitDepth != 0 && src.SourceBitDepth != 16 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBitDepth, src.SourceBitDepth)
	}

	n := min(len(src.Data), len(dst))

	var scratch [chunk]int16
	for off := 0; off < n; off += chunk {
		end := min(off+chunk, n)
		part := scratch[:end-off]
		for i, v := range src.Data[off:end] {
			part[i] = int16(min(max(v, math.MinInt16), math.MaxInt16))
		}
		bufops.Int16ToFloat32(part, dst[off:end])
	}

	return n, nil
}

// ToIntBuffer converts src to a new 16-bit IntBuffer carrying format.
// Samples are clamped and truncated as in bufops.Float32ToInt16.
func ToIntBuffer(src []float32, format *audio.Format) *audio.IntBuffer {
	out := &audio.IntBuffer{
		Format:         format,
		Data:           make([]int, len(src)),
		SourceBitDepth: 16,
	}

	var scratch [chunk]int16
	for off := 0; off < len(src); off += chunk {
		end := min(off+chunk, len(src))
		part := scratch[:end-off]
		bufops.Float32ToInt16(src[off:end], part)
		for i, v := range part {
			out.Data[off+i] = int(v)
		}
	}

	return out
}

// SplitChannels deinterleaves src into planar channels. It returns the
// number of frames written, bounded by the shortest channel.
func SplitChannels(src *audio.Float32Buffer, channels [][]float32) (int, error) {
	if src == nil || src.Format == nil {
		return 0, ErrNilBuffer
	}
	if src.Format.NumChannels != len(channels) {
		return 0, fmt.Errorf("%w: format has %d, got %d slices",
			ErrChannelMismatch, src.Format.NumChannels, len(channels))
	}
	if len(channels) == 0 {
		return 0, nil
	}

	frames := len(src.Data) / len(channels)
	for _, ch := range channels {
		frames = min(frames, len(ch))
	}

	bufops.Deinterleave(src.Data, channels)

	return frames, nil
}

// JoinChannels interleaves planar channels into a new Float32Buffer. Every
// channel must have the same length.
func JoinChannels(channels [][]float32, format *audio.Format) (*audio.Float32Buffer, error) {
	if format == nil {
		return nil, ErrNilBuffer
	}
	if format.NumChannels != len(channels) {
		return nil, fmt.Errorf("%w: format has %d, got %d slices",
			ErrChannelMismatch, format.NumChannels, len(channels))
	}

	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}
	for i, ch := range channels {
		if len(ch) != frames {
			return nil, fmt.Errorf("pcm: channel %d has %d frames, want %d", i, len(ch), frames)
		}
	}

	out := &audio.Float32Buffer{
		Format:         format,
		Data:           make([]float32, frames*len(channels)),
		SourceBitDepth: 32,
	}
	bufops.Interleave(channels, out.Data)

	return out, nil
}
