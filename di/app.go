package di

import (
	"venuely/internal/realtime"
	"venuely/transport/http"
)

// App is everything a process runs: the HTTP server and the realtime consumer feeding its streams.
type App struct {
	HTTP     *http.HTTP
	Consumer *realtime.Consumer
}
