package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Deck        DeckConfig        `yaml:"deck"`
	Images      ImagesConfig      `yaml:"images"`
	Speech      SpeechConfig      `yaml:"speech"`
	Video       VideoConfig       `yaml:"video"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Publish     PublishConfig     `yaml:"publish"`
	Schedule    ScheduleConfig    `yaml:"schedule"`
	UI          UIConfig          `yaml:"ui"`
}

// LLMConfig selects the chat backend. Provider is groq, openai or gemini.
type LLMConfig struct {
	Provider       string   `yaml:"provider"`
	Model          string   `yaml:"model"`
	BaseURL        string   `yaml:"base_url"`
	APIKey         string   `yaml:"api_key"`
	GeminiKeys     []string `yaml:"gemini_keys"`
	Temperature    *float32 `yaml:"temperature"`
	MaxTokens      int      `yaml:"max_tokens"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

type DeckConfig struct {
	DefaultSlides int    `yaml:"default_slides"`
	MaxSlides     int    `yaml:"max_slides"`
	MaxRetries    int    `yaml:"max_retries"`
	Brand         string `yaml:"brand"`
	Subtitle      string `yaml:"subtitle"`
	Handout       bool   `yaml:"handout"`
}

type ImagesConfig struct {
	Enabled           bool    `yaml:"enabled"`
	GoogleAPIKey      string  `yaml:"google_api_key"`
	GoogleCSEID       string  `yaml:"google_cse_id"`
	UnsplashKey       string  `yaml:"unsplash_access_key"`
	UnsplashBaseURL   string  `yaml:"unsplash_base_url"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// SpeechConfig selects the narration voice. Provider is gemini, openai or elevenlabs.
type SpeechConfig struct {
	Provider string  `yaml:"provider"`
	Model    string  `yaml:"model"`
	Voice    string  `yaml:"voice"`
	APIKey   string  `yaml:"api_key"`
	Speed    float64 `yaml:"speed"`
}

type VideoConfig struct {
	Enabled         bool    `yaml:"enabled"`
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	FPS             int     `yaml:"fps"`
	VideoCodec      string  `yaml:"video_codec"`
	AudioCodec      string  `yaml:"audio_codec"`
	Preset          string  `yaml:"preset"`
	FadeIn          float64 `yaml:"fade_in"`
	DefaultDuration float64 `yaml:"default_duration"`
	RasterDPI       int     `yaml:"raster_dpi"`
	FFmpegBinary    string  `yaml:"ffmpeg_binary"`
	FFprobeBinary   string  `yaml:"ffprobe_binary"`
	SofficeBinary   string  `yaml:"soffice_binary"`
	PdftoppmBinary  string  `yaml:"pdftoppm_binary"`
}

type PathsConfig struct {
	Output   string `yaml:"output"`
	Images   string `yaml:"images"`
	Inbox    string `yaml:"inbox"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
	ImageWorkers  int `yaml:"image_workers"`
}

type PublishConfig struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
}

type ScheduleConfig struct {
	Jobs []JobConfig `yaml:"jobs"`
}

// JobConfig is one cron-triggered topic deck.
type JobConfig struct {
	Name    string `yaml:"name"`
	Cron    string `yaml:"cron"`
	Topic   string `yaml:"topic"`
	Slides  int    `yaml:"slides"`
	Video   bool   `yaml:"video"`
	Handout bool   `yaml:"handout"`
}

type UIConfig struct {
	Progress bool `yaml:"progress"`
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field '%s': %s", e.Field, e.Message)
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = "groq"
	case "groq", "openai", "gemini":
	default:
		return &ConfigError{Field: "llm.provider", Message: fmt.Sprintf("unknown provider %q", c.LLM.Provider)}
	}
	switch c.Speech.Provider {
	case "":
		c.Speech.Provider = "gemini"
	case "gemini", "openai", "elevenlabs":
	default:
		return &ConfigError{Field: "speech.provider", Message: fmt.Sprintf("unknown provider %q", c.Speech.Provider)}
	}
	if c.Deck.MaxSlides < 0 || c.Deck.DefaultSlides < 0 {
		return &ConfigError{Field: "deck", Message: "slide counts must not be negative"}
	}
	for i, job := range c.Schedule.Jobs {
		if job.Cron == "" {
			return &ConfigError{Field: fmt.Sprintf("schedule.jobs[%d].cron", i), Message: "is required"}
		}
		if job.Topic == "" {
			return &ConfigError{Field: fmt.Sprintf("schedule.jobs[%d].topic", i), Message: "is required"}
		}
	}

	c.applyDefaults()
	return nil
}

const defaultTemperature float32 = 0.7

// SamplingTemperature returns the configured temperature; an absent key
// means 0.7 while an explicit 0 stays 0.
func (l LLMConfig) SamplingTemperature() float32 {
	if l.Temperature == nil {
		return defaultTemperature
	}
	return *l.Temperature
}

func (c *Config) applyDefaults() {
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case "groq":
			c.LLM.Model = "llama-3.3-70b-versatile"
		case "openai":
			c.LLM.Model = "gpt-4o-mini"
		case "gemini":
			c.LLM.Model = "gemini-2.5-flash"
		}
	}
	if c.LLM.BaseURL == "" && c.LLM.Provider == "groq" {
		c.LLM.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.LLM.Temperature == nil {
		t := defaultTemperature
		c.LLM.Temperature = &t
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 4096
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = 120
	}

	if c.Deck.DefaultSlides == 0 {
		c.Deck.DefaultSlides = 5
	}
	if c.Deck.MaxSlides == 0 {
		c.Deck.MaxSlides = 15
	}
	if c.Deck.MaxRetries == 0 {
		c.Deck.MaxRetries = 2
	}
	if c.Deck.Brand == "" {
		c.Deck.Brand = "MADE BY ENTHRAL AI"
	}
	if c.Deck.Subtitle == "" {
		c.Deck.Subtitle = "Strategic Analysis & Business Intelligence"
	}

	if c.Images.UnsplashBaseURL == "" {
		c.Images.UnsplashBaseURL = "https://api.unsplash.com"
	}
	if c.Images.TimeoutSeconds == 0 {
		c.Images.TimeoutSeconds = 15
	}
	if c.Images.RequestsPerSecond == 0 {
		c.Images.RequestsPerSecond = 2
	}

	if c.Speech.Voice == "" {
		switch c.Speech.Provider {
		case "gemini":
			c.Speech.Voice = "Kore"
		case "openai":
			c.Speech.Voice = "alloy"
		case "elevenlabs":
			c.Speech.Voice = "21m00Tcm4TlvDq8ikWAM"
		}
	}
	if c.Speech.Model == "" {
		switch c.Speech.Provider {
		case "gemini":
			c.Speech.Model = "gemini-2.5-flash-preview-tts"
		case "openai":
			c.Speech.Model = "tts-1"
		case "elevenlabs":
			c.Speech.Model = "eleven_multilingual_v2"
		}
	}
	if c.Speech.Speed == 0 {
		c.Speech.Speed = 1.0
	}

	if c.Video.Width == 0 {
		c.Video.Width = 1920
	}
	if c.Video.Height == 0 {
		c.Video.Height = 1080
	}
	if c.Video.FPS == 0 {
		c.Video.FPS = 30
	}
	if c.Video.VideoCodec == "" {
		c.Video.VideoCodec = "libx264"
	}
	if c.Video.AudioCodec == "" {
		c.Video.AudioCodec = "aac"
	}
	if c.Video.Preset == "" {
		c.Video.Preset = "medium"
	}
	if c.Video.FadeIn == 0 {
		c.Video.FadeIn = 0.5
	}
	if c.Video.DefaultDuration == 0 {
		c.Video.DefaultDuration = 8
	}
	if c.Video.RasterDPI == 0 {
		c.Video.RasterDPI = 150
	}
	if c.Video.FFmpegBinary == "" {
		c.Video.FFmpegBinary = "ffmpeg"
	}
	if c.Video.FFprobeBinary == "" {
		c.Video.FFprobeBinary = "ffprobe"
	}
	if c.Video.SofficeBinary == "" {
		c.Video.SofficeBinary = "soffice"
	}
	if c.Video.PdftoppmBinary == "" {
		c.Video.PdftoppmBinary = "pdftoppm"
	}

	if c.Paths.Output == "" {
		c.Paths.Output = "output"
	}
	if c.Paths.Images == "" {
		c.Paths.Images = filepath.Join(c.Paths.Output, "images")
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.ImageWorkers == 0 {
		c.Performance.ImageWorkers = 4
	}
	if c.Publish.Prefix == "" {
		c.Publish.Prefix = "decks"
	}
	for i := range c.Schedule.Jobs {
		if c.Schedule.Jobs[i].Slides == 0 {
			c.Schedule.Jobs[i].Slides = c.Deck.DefaultSlides
		}
		if c.Schedule.Jobs[i].Name == "" {
			c.Schedule.Jobs[i].Name = c.Schedule.Jobs[i].Topic
		}
	}
}
