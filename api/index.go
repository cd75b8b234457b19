package handler

import (
	"net/http"
	"sync"
	"venuely/config"
	"venuely/di"
	"venuely/shared/logger"

	_ "venuely/docs"
)

var (
	app  *di.App
	once sync.Once
)

// Handler serves requests in a serverless runtime. Realtime streams only see changes published
// through Kafka, since a serverless instance shares no memory with its peers.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.Setup(cfg)

		app = di.InitializeService()
	})

	app.HTTP.ServeHTTP(w, r)
}
