// Package speech synthesizes Arabic pronunciation audio for words that
// have no recitation recording, using Google Cloud Text-to-Speech.
package speech

import (
	"context"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	apperrors "github.com/tijeane/quran-learning/internal/errors"
	"github.com/tijeane/quran-learning/internal/logger"
)

// Synthesizer converts Arabic text to spoken audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Close() error
}

// GoogleSynthesizer backs Synthesizer with the Cloud TTS API.
type GoogleSynthesizer struct {
	client *texttospeech.Client
	voice  string
	rate   float64
	log    *logger.Logger
}

var _ Synthesizer = (*GoogleSynthesizer)(nil)

// NewGoogleSynthesizer dials the TTS service. voice is a Cloud TTS voice
// name such as "ar-XA-Standard-A"; rate below 1.0 slows speech for
// learners.
func NewGoogleSynthesizer(ctx context.Context, voice string, rate float64) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, apperrors.NewUpstreamError("could not connect to speech service", err)
	}
	return &GoogleSynthesizer{
		client: client,
		voice:  voice,
		rate:   rate,
		log:    logger.Default().WithPrefix("speech"),
	}, nil
}

// Synthesize renders text as MP3 audio.
func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, apperrors.NewValidationError("text", "must not be empty")
	}

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageCode(s.voice),
			Name:         s.voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  s.rate,
		},
	}

	resp, err := s.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		s.log.Warn("synthesis failed for %q: %v", text, err)
		return nil, apperrors.NewUpstreamError("speech synthesis failed", err)
	}
	return resp.AudioContent, nil
}

func (s *GoogleSynthesizer) Close() error {
	return s.client.Close()
}

// languageCode extracts the BCP-47 language from a voice name, so
// "ar-XA-Standard-A" selects the ar-XA voice family.
func languageCode(voice string) string {
	parts := strings.SplitN(voice, "-", 3)
	if len(parts) >= 2 {
		return parts[0] + "-" + parts[1]
	}
	return voice
}
