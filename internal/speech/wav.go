package speech

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV wraps little-endian PCM samples in a canonical 44-byte RIFF header.
func WriteWAV(w io.Writer, pcm []byte, sampleRate, channels, bitDepth int) error {
	blockAlign := channels * bitDepth / 8
	header := struct {
		ChunkID       [4]byte
		ChunkSize     uint32
		Format        [4]byte
		Subchunk1ID   [4]byte
		Subchunk1Size uint32
		AudioFormat   uint16
		NumChannels   uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
		Subchunk2ID   [4]byte
		Subchunk2Size uint32
	}{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     uint32(36 + len(pcm)),
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * blockAlign),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: uint16(bitDepth),
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: uint32(len(pcm)),
	}

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("write wav header: %w", err)
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("write wav data: %w", err)
	}
	return nil
}

// WAVDuration reads a canonical WAV header and returns the clip length in
// seconds.
func WAVDuration(r io.Reader) (float64, error) {
	var header [44]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, fmt.Errorf("read wav header: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return 0, fmt.Errorf("not a wav file")
	}

	byteRate := binary.LittleEndian.Uint32(header[28:32])
	dataSize := binary.LittleEndian.Uint32(header[40:44])
	if byteRate == 0 {
		return 0, fmt.Errorf("wav byte rate is zero")
	}
	return float64(dataSize) / float64(byteRate), nil
}
