package main

import (
	"errors"
	"fmt"

	"github.com/kodistudios/playnote/internal/logger"
	"github.com/kodistudios/playnote/sdk/contracts"
	"github.com/kodistudios/playnote/sdk/midi"
)

func main() {
	log := logger.NewStandardLogger()

	player, err := midi.NewNotePlayer(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.DebugLevel),
		contracts.WithDeviceIndex(0),
	)
	if err != nil {
		log.Error("Failed to initialize note player", log.Field().Error("error", err))
		return
	}

	// Guitar on channel 1, G above middle C, for two seconds.
	req := contracts.PlaybackRequest{
		Channel:        1,
		Instrument:     contracts.InstrumentGuitar,
		Pitch:          67,
		Velocity:       120,
		DurationMillis: 2000,
	}

	fmt.Println("Playing guitar note...")
	if err := player.PlayNote(req); err != nil {
		var verr *contracts.ValidationError
		if errors.As(err, &verr) {
			log.Error("Note rejected",
				log.Field().String("field", verr.Field),
				log.Field().Int64("value", int64(verr.Value)),
				log.Field().Int64("max", int64(verr.Max)))
			return
		}
		log.Error("Failed to play note", log.Field().Error("error", err))
	}
}
