package speech

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/AltairaLabs/PromptKit/runtime/tts"
	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.SpeechConfig
		wantErr bool
	}{
		{name: "gemini", cfg: config.SpeechConfig{Provider: "gemini", APIKey: "k"}},
		{name: "openai", cfg: config.SpeechConfig{Provider: "openai", APIKey: "k"}},
		{name: "elevenlabs", cfg: config.SpeechConfig{Provider: "elevenlabs", APIKey: "k"}},
		{name: "missing key", cfg: config.SpeechConfig{Provider: "openai"}, wantErr: true},
		{name: "unknown provider", cfg: config.SpeechConfig{Provider: "gtts", APIKey: "k"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg, logger.Nop())
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && s == nil {
				t.Fatal("New() returned nil synthesizer")
			}
		})
	}
}

func TestServiceSynthesize(t *testing.T) {
	audio := []byte("ID3-fake-mp3-bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/speech" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(audio)
	}))
	defer srv.Close()

	svc := tts.NewOpenAI("test-key", tts.WithOpenAIBaseURL(srv.URL), tts.WithOpenAIClient(srv.Client()))
	s := newServiceSynth(svc, config.SpeechConfig{Voice: "alloy", Model: "tts-1", Speed: 1}, logger.Nop())

	out := filepath.Join(t.TempDir(), "slide_1.wav")
	path, err := s.Synthesize(context.Background(), "Hello there", out)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if filepath.Ext(path) != ".mp3" {
		t.Errorf("path = %s, want .mp3 extension", path)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, audio) {
		t.Errorf("file content = %q, want %q", got, audio)
	}
}

func TestServiceSynthesizeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := tts.NewOpenAI("test-key", tts.WithOpenAIBaseURL(srv.URL), tts.WithOpenAIClient(srv.Client()))
	s := newServiceSynth(svc, config.SpeechConfig{Voice: "alloy"}, logger.Nop())

	dir := t.TempDir()
	if _, err := s.Synthesize(context.Background(), "Hello", filepath.Join(dir, "x")); err == nil {
		t.Fatal("expected error from failing service")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("no file should be written on failure, got %d", len(entries))
	}
}

func TestEmptyText(t *testing.T) {
	synths := map[string]Synthesizer{
		"service": newServiceSynth(tts.NewOpenAI("k"), config.SpeechConfig{}, logger.Nop()),
		"gemini": &geminiSynth{logger: logger.Nop(), generate: func(context.Context, string, string, string, string) ([]byte, error) {
			t.Error("generate must not be called for empty text")
			return nil, nil
		}},
	}
	for name, s := range synths {
		t.Run(name, func(t *testing.T) {
			_, err := s.Synthesize(context.Background(), "   ", filepath.Join(t.TempDir(), "a"))
			if !errors.Is(err, ErrEmptyText) {
				t.Errorf("error = %v, want ErrEmptyText", err)
			}
		})
	}
}

func TestGeminiSynthesize(t *testing.T) {
	pcm := make([]byte, geminiSampleRate*2) // one second
	var gotVoice, gotText string
	g := &geminiSynth{
		key:    "k",
		model:  "gemini-tts",
		voice:  "Kore",
		logger: logger.Nop(),
		generate: func(_ context.Context, key, model, voice, text string) ([]byte, error) {
			gotVoice, gotText = voice, text
			return pcm, nil
		},
	}

	path, err := g.Synthesize(context.Background(), "Welcome", filepath.Join(t.TempDir(), "title.mp3"))
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if filepath.Ext(path) != ".wav" {
		t.Errorf("path = %s, want .wav", path)
	}
	if gotVoice != "Kore" || gotText != "Welcome" {
		t.Errorf("generate got voice=%q text=%q", gotVoice, gotText)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	d, err := WAVDuration(f)
	if err != nil {
		t.Fatalf("WAVDuration() error = %v", err)
	}
	if math.Abs(d-1.0) > 1e-9 {
		t.Errorf("duration = %v, want 1s", d)
	}
}

func TestGeminiNoAudio(t *testing.T) {
	g := &geminiSynth{logger: logger.Nop(), generate: func(context.Context, string, string, string, string) ([]byte, error) {
		return nil, nil
	}}
	if _, err := g.Synthesize(context.Background(), "Hi", filepath.Join(t.TempDir(), "a")); err == nil {
		t.Fatal("expected error when no audio is returned")
	}
}

func TestWriteWAVHeader(t *testing.T) {
	pcm := []byte{1, 2, 3, 4}
	var buf bytes.Buffer
	if err := WriteWAV(&buf, pcm, 24000, 1, 16); err != nil {
		t.Fatal(err)
	}

	b := buf.Bytes()
	if len(b) != 44+len(pcm) {
		t.Fatalf("len = %d, want %d", len(b), 44+len(pcm))
	}
	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"chunk size", binary.LittleEndian.Uint32(b[4:8]), 40},
		{"fmt size", binary.LittleEndian.Uint32(b[16:20]), 16},
		{"audio format", uint32(binary.LittleEndian.Uint16(b[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(b[22:24])), 1},
		{"sample rate", binary.LittleEndian.Uint32(b[24:28]), 24000},
		{"byte rate", binary.LittleEndian.Uint32(b[28:32]), 48000},
		{"block align", uint32(binary.LittleEndian.Uint16(b[32:34])), 2},
		{"bits", uint32(binary.LittleEndian.Uint16(b[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(b[40:44]), 4},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[36:40]) != "data" {
		t.Errorf("bad magic: %q", b[:44])
	}
}

func TestWAVDurationInvalid(t *testing.T) {
	tests := map[string]io.Reader{
		"short":    bytes.NewReader([]byte("RIFF")),
		"not riff": bytes.NewReader(make([]byte, 44)),
	}
	for name, r := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := WAVDuration(r); err == nil {
				t.Error("expected error")
			}
		})
	}
}
