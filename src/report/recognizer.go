package report

import (
	"github.com/rs/zerolog"
)

// DeviceRecognizer stands in for a recognition session running on the
// reporter's phone: the transcripts arrive with the request, so starting and
// stopping only records the session.
type DeviceRecognizer struct {
	log    zerolog.Logger
	locale string
}

func NewDeviceRecognizer(log zerolog.Logger) *DeviceRecognizer {
	return &DeviceRecognizer{log: log}
}

func (r *DeviceRecognizer) Start(locale string) error {
	r.locale = locale
	r.log.Debug().Str("locale", locale).Msg("speech recognition started")
	return nil
}

func (r *DeviceRecognizer) Stop() error {
	r.log.Debug().Str("locale", r.locale).Msg("speech recognition stopped")
	return nil
}
